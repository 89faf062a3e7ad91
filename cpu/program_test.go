package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramWrite(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := doParse(t, asm, []string{
		"@2",
		"D=A",
	})

	buf := &bytes.Buffer{}
	n, err := prog.WriteTo(buf)
	assert.NoError(err)
	assert.Equal(int64(buf.Len()), n)

	assert.Equal("0000000000000010\n1110110000010000\n", buf.String())
}

func TestReadHack(t *testing.T) {
	assert := assert.New(t)

	listing := strings.Join([]string{
		"0000000000000010",
		"",
		"1110110000010000",
	}, "\n")

	prog, err := ReadHack(strings.NewReader(listing))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	codesEqual(t, []Code{0x0002, 0xec10}, prog)
	assert.Equal(0, prog.Listing[0].Ip.Int())
	assert.Equal(1, prog.Listing[0].LineNo)
	assert.Equal(3, prog.Listing[1].LineNo)
}

func TestReadHackFormat(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		listing string
		lineno  int
	}){
		{"short", "010101\n", 1},
		{"not-binary", "0000000000000010\n000000000000002x\n", 2},
	}

	for _, entry := range table {
		_, err := ReadHack(strings.NewReader(entry.listing))
		assert.ErrorIs(err, ErrHackFormat, entry.name)

		var es *ErrSyntax
		if assert.ErrorAs(err, &es, entry.name) {
			assert.Equal(entry.lineno, es.LineNo, entry.name)
		}
	}
}
