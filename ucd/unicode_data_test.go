package ucd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	verr "github.com/glyphparty/glyphparty/error"
)

func TestParseUnicodeData(t *testing.T) {
	src := `# sample of UnicodeData.txt

0007;<control>;Cc;0;BN;;;;;N;BELL;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
2318;PLACE OF INTEREST SIGN;So;0;ON;;;;;N;COMMAND KEY;;;;
`
	entries, err := ParseUnicodeData(strings.NewReader(src), "UnicodeData.txt")
	require.NoError(t, err)
	require.Equal(t, []CharacterEntry{
		{CodePoint: "0007", Name: "<control>", Category: "Cc"},
		{CodePoint: "0041", Name: "LATIN CAPITAL LETTER A", Category: "Lu"},
		{CodePoint: "2318", Name: "PLACE OF INTEREST SIGN", Category: "So"},
	}, entries)
}

func TestParseUnicodeData_MalformedRecord(t *testing.T) {
	src := `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0042;LATIN CAPITAL LETTER B
`
	_, err := ParseUnicodeData(strings.NewReader(src), "UnicodeData.txt")
	require.Error(t, err)

	var dataErr *verr.DataError
	require.True(t, errors.As(err, &dataErr))
	require.Equal(t, "UnicodeData.txt", dataErr.SourceName)
	require.Equal(t, 2, dataErr.Row)
}

func TestParseUnicodeData_Empty(t *testing.T) {
	entries, err := ParseUnicodeData(strings.NewReader("# comments only\n"), "UnicodeData.txt")
	require.NoError(t, err)
	require.Empty(t, entries)
}
