package prizm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteTo implements io.WriterTo.
func (o *Obj) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, o.obj.String())
	return int64(n), err
}

// WriteFile writes the obj to fileName, truncating any existing file.
//
// Tip: writing a numbered sequence of files, e.g. fmt.Sprintf("step_%05d.obj", i),
// and loading them together makes it easy to step through the progress of
// an algorithm in the viewer.
func (o *Obj) WriteFile(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create obj file %s: %w", fileName, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := o.WriteTo(writer); err != nil {
		return fmt.Errorf("could not write obj file %s: %w", fileName, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("could not write obj file %s: %w", fileName, err)
	}

	o.logger.Debug().
		Str("path", fileName).
		Int("bytes", o.Len()).
		Int("vertices", o.vCount).
		Msg("wrote obj")
	return file.Close()
}
