package pipe_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psi46/datastream/pipe"
	"github.com/psi46/datastream/record"
)

func TestRawDataPrinterHexMode(t *testing.T) {
	src := &sliceRecordSource{recs: []record.Record{
		{RecordNr: 7, Flags: record.EndError, Payload: []uint16{0x001, 0xFFF}},
	}}
	var buf bytes.Buffer
	p := pipe.NewRawDataPrinter(src, &buf, false)

	rec, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	assert.Equal(t, uint32(7), rec.RecordNr)

	out := buf.String()
	assert.Contains(t, out, "record 7: 2 symbols")
	assert.Contains(t, out, "001")
	assert.Contains(t, out, "fff")
}

func TestRawDataPrinterAnalogMode(t *testing.T) {
	src := &sliceRecordSource{recs: []record.Record{
		{RecordNr: 1, Payload: []uint16{0xFFF}}, // ExpandSign(0xFFF) == -1
	}}
	var buf bytes.Buffer
	p := pipe.NewRawDataPrinter(src, &buf, true)

	if _, err := p.Read(); err != nil {
		t.Fatalf("Read: %v", err)
	}
	assert.Contains(t, buf.String(), "-1")
}
