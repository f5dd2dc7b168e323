package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows_AllColumns(t *testing.T) {
	input := "First Name,Last Name,Email,Phone Number,Address,SSN,Financial Goal,Birthday,Family Members,Business Name\n" +
		"Jane,Doe,jane@doe.com,555-0100,\"1 Main St, Springfield\",123-45-6789,Retire early,1980-04-01,3,Doe LLC\n"

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 2, r.Line)
	assert.Equal(t, "Jane", r.FirstName)
	assert.Equal(t, "Doe", r.LastName)
	assert.Equal(t, "jane@doe.com", r.Email)
	assert.Equal(t, "555-0100", r.Phone)
	assert.Equal(t, "1 Main St, Springfield", r.Address)
	assert.Equal(t, "123-45-6789", r.SSN)
	assert.Equal(t, "Retire early", r.FinancialGoal)
	assert.Equal(t, "1980-04-01", r.Birthday)
	assert.Equal(t, "3", r.FamilyMembers)
	assert.Equal(t, "Doe LLC", r.BusinessName)
}

func TestReadRows_HeaderVariations(t *testing.T) {
	input := "\xEF\xBB\xBF email , first name,LAST NAME,Notes\n" +
		"a@b.c,Ann,Lee,ignored\n" +
		"\n" +
		",,,\n" +
		"short\n"

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank lines are skipped")

	assert.Equal(t, "Ann", rows[0].FirstName)
	assert.Equal(t, "Lee", rows[0].LastName)
	assert.Equal(t, "a@b.c", rows[0].Email)
	assert.Equal(t, "", rows[0].Phone, "missing columns read as empty")

	assert.Equal(t, "short", rows[1].Email)
	assert.Equal(t, "", rows[1].FirstName)
	assert.Equal(t, 5, rows[1].Line)
}

func TestReadRows_Empty(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	rows, err := ReadRows(strings.NewReader("First Name,Last Name,Email\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path, []byte("First Name,Last Name,Email\nJane,Doe,j@d.com\n"), 0o644))

	rows, err := LoadImportFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = LoadImportFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
