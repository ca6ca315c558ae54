package engine

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/nqtree/geom"
)

func blob(t *testing.T, coords ...float64) []byte {
	t.Helper()
	b, err := geom.EncodePoint(geom.NewPoint(coords...))
	require.NoError(t, err)
	return b
}

func TestRegionFunctions(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var dist float64
	require.NoError(t, db.QueryRow(`SELECT nq_l2(?, ?)`, blob(t, 0, 0), blob(t, 3, 4)).Scan(&dist))
	assert.InDelta(t, 5, dist, 1e-6)

	lo, hi := blob(t, 15, 15, 25, 115), blob(t, 35, 35, 35, 135)
	var testCases = []struct {
		description string
		point       []byte
		inBox       int64
		inSphere    int64
	}{
		{description: "first", point: blob(t, 15, 18, 20, 115), inBox: 0, inSphere: 1},
		{description: "second", point: blob(t, 20, 20, 82, 123), inBox: 0, inSphere: 0},
		{description: "third", point: blob(t, 30, 30, 30, 131), inBox: 1, inSphere: 1},
	}
	center := blob(t, 20, 22, 23, 122)
	for _, testCase := range testCases {
		var inBox, inSphere int64
		require.NoError(t, db.QueryRow(`SELECT nq_in_box(?, ?, ?), nq_in_sphere(?, ?, ?)`,
			testCase.point, lo, hi, testCase.point, center, 20.0).Scan(&inBox, &inSphere), testCase.description)
		assert.Equal(t, testCase.inBox, inBox, testCase.description)
		assert.Equal(t, testCase.inSphere, inSphere, testCase.description)
	}
}

func TestRegionFunctionsFilterTable(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE points(id INTEGER PRIMARY KEY, p BLOB)`)
	require.NoError(t, err)
	for i, p := range [][]float64{{1, 1}, {5, 5}, {9, 9}, {5, 9.5}} {
		_, err = db.Exec(`INSERT INTO points(id, p) VALUES (?, ?)`, i+1, blob(t, p...))
		require.NoError(t, err)
	}

	rows, err := db.Query(`SELECT id FROM points WHERE nq_in_sphere(p, ?, 5) = 1 ORDER BY id`, blob(t, 5, 5))
	require.NoError(t, err)
	defer rows.Close()
	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{2, 4}, ids)
}

func TestRegionFunctionsNullAndErrors(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var result sql.NullInt64
	require.NoError(t, db.QueryRow(`SELECT nq_in_box(NULL, ?, ?)`, blob(t, 0), blob(t, 1)).Scan(&result))
	assert.False(t, result.Valid)

	var dist sql.NullFloat64
	require.NoError(t, db.QueryRow(`SELECT nq_l2(?, NULL)`, blob(t, 0)).Scan(&dist))
	assert.False(t, dist.Valid)

	err = db.QueryRow(`SELECT nq_l2(?, ?)`, blob(t, 0, 0), blob(t, 1)).Scan(&dist)
	assert.Error(t, err)

	err = db.QueryRow(`SELECT nq_in_sphere(?, ?, 'wide')`, blob(t, 0), blob(t, 1)).Scan(&result)
	assert.Error(t, err)
}
