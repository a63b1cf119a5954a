package main

import (
	"bytes"
	"strings"
	"testing"

	bplus "BPlusIndex/bplustree"
	lookupcache "BPlusIndex/lookup_cache"

	"github.com/stretchr/testify/require"
)

func TestREPLSession(t *testing.T) {
	index, err := lookupcache.New[int, string](bplus.Config{Order: 3}, lookupcache.DefaultConfig(), nil)
	require.NoError(t, err)
	defer index.Close()

	script := strings.Join([]string{
		"insert 10 ten",
		"insert 20 twenty",
		"insert 30 thirty",
		"insert 40 forty",
		"insert 20 TWENTY",
		"get 20",
		"get 99",
		"delete 40",
		"delete 40",
		"range 10 30",
		"min",
		"max",
		"validate",
		"bogus",
		"insert x y",
		"stats",
		"exit",
		"get 10",
	}, "\n")

	var out bytes.Buffer
	repl(strings.NewReader(script), &out, index)
	got := out.String()

	require.Contains(t, got, "inserted 40")
	require.Contains(t, got, "updated 20")
	require.Contains(t, got, "20 --> TWENTY")
	require.Contains(t, got, "99 not found")
	require.Contains(t, got, "deleted 40")
	require.Contains(t, got, "40 not found")
	require.Contains(t, got, "10 --> ten\n20 --> TWENTY\n30 --> thirty\n(3 rows)")
	require.Contains(t, got, "idx> 10\nidx> 30\nidx> ok\n")
	require.Contains(t, got, `Error: unknown command "bogus"`)
	require.Contains(t, got, `Error: bad key "x"`)
	require.Contains(t, got, "order=3 height=")
	require.Contains(t, got, " size=3 leaves=")
	require.Contains(t, got, "cache hits=")
	// nothing runs after exit
	require.NotContains(t, got, "10 --> ten\nidx>")
	require.Equal(t, 3, index.Tree().Size())
}
