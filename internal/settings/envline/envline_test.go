package envline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeQuoting(t *testing.T) {
	assert.Equal(t, "FOO=bar", Encode(map[string]string{"FOO": "bar"}))
	assert.Equal(t, `BAZ="a b c"`, Encode(map[string]string{"BAZ": "a b c"}))
	assert.Equal(t, `EMPTY=""`, Encode(map[string]string{"EMPTY": ""}))
	assert.Equal(t, "KEY='line1\nline2'", Encode(map[string]string{"KEY": "line1\nline2"}))
	assert.Equal(t, "Q=\"it's\"", Encode(map[string]string{"Q": "it's"}))
}

func TestEncodeSortedKeys(t *testing.T) {
	got := Encode(map[string]string{"B": "2", "A": "1", "C": "3"})
	assert.Equal(t, "A=1\nB=2\nC=3", got)
}

func TestDecodeBasic(t *testing.T) {
	got := Decode("FOO=bar\nBAZ=\"a b c\"")
	assert.Equal(t, map[string]string{"FOO": "bar", "BAZ": "a b c"}, got)
}

func TestDecodeSkipsMalformedLines(t *testing.T) {
	got := Decode("# comment=ignored\nno equals sign\n=missing key\nOK=1\n\n")
	assert.Equal(t, map[string]string{"OK": "1"}, got)
}

func TestDecodeStripsOneQuoteLayer(t *testing.T) {
	got := Decode(`A='quoted'` + "\n" + `B="''"`)
	assert.Equal(t, map[string]string{"A": "quoted", "B": "''"}, got)
}

func TestDecodeTrimsKeyAndValue(t *testing.T) {
	got := Decode("  KEY  =  value  ")
	assert.Equal(t, map[string]string{"KEY": "value"}, got)
}

func TestDecodeMultilineQuotedValue(t *testing.T) {
	got := Decode("KEY='line1\nline2'")
	assert.Equal(t, map[string]string{"KEY": "line1\nline2"}, got)
}

func TestDecodeMultilineTrailingWhitespace(t *testing.T) {
	got := Decode("KEY='line1\nline2' \nNEXT=1")
	assert.Equal(t, map[string]string{"KEY": "line1\nline2", "NEXT": "1"}, got)
}

func TestRoundTrip(t *testing.T) {
	cases := []map[string]string{
		{"FOO": "bar", "BAZ": "a b c"},
		{"KEY": "line1\nline2"},
		{"EMPTY": "", "TAB": "a\tb"},
		{"temperature": "0.7", "top_p": "0.9"},
	}
	for _, m := range cases {
		assert.Equal(t, m, Decode(Encode(m)))
	}
}
