package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"codelint/internal/engine"
)

func analyzed(t *testing.T, text string) *engine.Result {
	t.Helper()
	res, err := engine.Analyze(text)
	require.NoError(t, err)
	return res
}

func TestKeyDependsOnEveryPart(t *testing.T) {
	base := Key("int x;", "fp", "0")
	assert.Equal(t, base, Key("int x;", "fp", "0"))
	assert.NotEqual(t, base, Key("int y;", "fp", "0"))
	assert.NotEqual(t, base, Key("int x;", "fp2", "0"))
	assert.NotEqual(t, base, Key("int x;", "fp", "10"))
	assert.NotEqual(t, Key("c", "ab"), Key("bc", "a"))
}

func TestPutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	require.NoError(t, err)

	res := analyzed(t, "}\nx = 1;  ")
	payload, ok := FromResult(res)
	require.True(t, ok)
	key := Key("}\nx = 1;  ", "fp")
	require.NoError(t, c.Put(key, payload))

	// новый экземпляр читает с диска, а не из памяти
	fresh, err := Open(dir)
	require.NoError(t, err)
	got, ok, err := fresh.Get(key)
	require.NoError(t, err)
	require.True(t, ok)

	back := got.Result()
	assert.Equal(t, res.Diagnostics, back.Diagnostics)
	assert.Equal(t, res.Score, back.Score)
	assert.Equal(t, res.Grade, back.Grade)
	assert.Equal(t, res.Counts, back.Counts)
	assert.Equal(t, res.Suggestions, back.Suggestions)

	entries, err := filepath.Glob(filepath.Join(dir, "results", "*", "tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must not survive Put")
}

func TestGetMisses(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := c.Get(Key("absent"))
	require.NoError(t, err)
	assert.False(t, ok)

	// entry of an older schema
	key := Key("old")
	data, err := msgpack.Marshal(&Payload{Schema: SchemaVersion + 1, Score: 50})
	require.NoError(t, err)
	p := c.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o600))
	_, ok, err = c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	// garbage
	key = Key("garbage")
	p = c.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte{0xc1, 0xff}, 0o600))
	_, ok, err = c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	payload, ok := FromResult(analyzed(t, "{"))
	require.True(t, ok)
	key := Key("{")
	require.NoError(t, c.Put(key, payload))
	require.NoError(t, c.Clear())

	_, ok, err = c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.Clear(), "clearing an empty cache is fine")
}

func TestFailedResultsAreNotCached(t *testing.T) {
	_, ok := FromResult(&engine.Result{Failures: []engine.RuleFailure{{RuleID: "x"}}})
	assert.False(t, ok)

	var nilCache *Cache
	assert.NoError(t, nilCache.Put(Key("a"), &Payload{}))
	_, ok, err := nilCache.Get(Key("a"))
	assert.NoError(t, err)
	assert.False(t, ok)
}
