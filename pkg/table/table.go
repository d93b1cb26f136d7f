package table

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const DefaultPortraitStringLength = 128

// RenderShow 打印单条数据为ASCII表格，fields控制字段从上到下出现的顺序，不在fields中的字段忽略
func RenderShow(w io.Writer, data map[string]interface{}, fields []string) {
	rows := make([]table.Row, 0, len(fields))
	for _, field := range fields {
		v, ok := data[field]
		if !ok {
			continue
		}
		rows = append(rows, table.Row{field, text.WrapHard(fmt.Sprint(v), DefaultPortraitStringLength)})
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows(rows)
	t.Render()
}
