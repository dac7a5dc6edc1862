package recommend_test

import (
	"encoding/json"
	"testing"

	"movierecommender/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendation_Decode(t *testing.T) {
	body := `[
		{"name":"Interstellar","rating":8.6,"description":"Space.","director":"Christopher Nolan","actors":"Matthew McConaughey","similarity":"91.20%"},
		{"name":"Tenet","rating":"7.3","description":"Time.","director":"Christopher Nolan","actors":"John David Washington","similarity":0.88},
		{"name":"Memento","rating":null,"description":"","director":"","actors":""}
	]`

	var recs []recommend.Recommendation
	require.NoError(t, json.Unmarshal([]byte(body), &recs))
	require.Len(t, recs, 3)

	assert.Equal(t, "Interstellar", recs[0].Name)
	assert.Equal(t, recommend.Value("8.6"), recs[0].Rating)
	assert.Equal(t, recommend.Value("91.20%"), recs[0].Similarity)

	assert.Equal(t, "7.3", recs[1].Rating.String())
	assert.Equal(t, "0.88", recs[1].Similarity.String())

	assert.Empty(t, recs[2].Rating)
	assert.Empty(t, recs[2].Similarity)
}

func TestValue_KeepsNumberText(t *testing.T) {
	var v recommend.Value
	require.NoError(t, json.Unmarshal([]byte("9.50"), &v))
	assert.Equal(t, recommend.Value("9.50"), v)
}

func TestValue_KeepsBooleanText(t *testing.T) {
	var recs []recommend.Recommendation
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"A","rating":true,"similarity":false}]`), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, recommend.Value("true"), recs[0].Rating)
	assert.Equal(t, recommend.Value("false"), recs[0].Similarity)
}

func TestValue_RejectsObjects(t *testing.T) {
	var v recommend.Value
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
}
