package list

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

func renderLines(w io.Writer, values iter.Seq[int]) error {
	for value := range values {
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	return nil
}

func format(values iter.Seq[int]) string {
	var builder strings.Builder
	builder.WriteByte('[')
	first := true
	for value := range values {
		if !first {
			builder.WriteByte(' ')
		}
		builder.WriteString(strconv.Itoa(value))
		first = false
	}
	builder.WriteByte(']')
	return builder.String()
}
