package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPoints(t *testing.T) {
	out, err := run(t, "points")
	require.NoError(t, err)

	assert.Contains(t, out, "points:\n")
	assert.Contains(t, out, "  PointClass equal: false\n")
	assert.Contains(t, out, "  PointRecord equal: true (hash match: true)\n")
	assert.Contains(t, out, "  PointWithValueEquality equal: true\n")
}

func TestTrades_Defaults(t *testing.T) {
	out, err := run(t, "trades")
	require.NoError(t, err)

	assert.Contains(t, out, "TradeRecord{TradeID: 123456, Amount: 999.45} => That's a big trade!!")
	assert.Contains(t, out, "TradeRecord{TradeID: 12321321, Amount: 200} => Bingo | Just an average trade | Just an average trade")
}

func TestTrades_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trades:\n  - id: small\n    amount: \"10\"\n"), 0o600))

	out, err := run(t, "trades", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "TradeRecord{TradeID: small, Amount: 10} => That's a small trade!!")

	_, err = run(t, "trades", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTools(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--kind", "drill", "--value", "11"}, "match: Fast Drill"},
		{[]string{"--kind", "drill", "--value", "10"}, "match: Invalid tool"},
		{[]string{"--kind", "hammer", "--value", "4"}, "match: New Hammer"},
		{[]string{"--kind", "hammer", "--value", "5"}, "match: Invalid tool"},
		{[]string{"--kind", "saw"}, "match: Invalid tool"},
	}

	for _, tt := range tests {
		out, err := run(t, append([]string{"tools"}, tt.args...)...)
		require.NoError(t, err)
		assert.Contains(t, out, tt.want)
		assert.Contains(t, out, "agree: true")
	}
}

func TestFilter(t *testing.T) {
	out, err := run(t, "filter")
	require.NoError(t, err)

	assert.Contains(t, out, "name starts with B: [Item{ID: 2, Name: Bar} Item{ID: 3, Name: Baz}]")
	assert.Contains(t, out, "even id: [Item{ID: 2, Name: Bar}]")
	assert.Contains(t, out, "id > 2: [Item{ID: 3, Name: Baz}]")
	assert.Contains(t, out, "  Item Foo has been printed\n  Item Foo has been printed ... Again!\n")
	assert.Contains(t, out, "... and the winner is : false")
}

func TestCurry(t *testing.T) {
	out, err := run(t, "curry", "5", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "CurriedAdd(5)(3) = 8")

	_, err = run(t, "curry", "five", "3")
	assert.Error(t, err)

	_, err = run(t, "curry", "5")
	assert.Error(t, err)
}

func TestRailway(t *testing.T) {
	out, err := run(t, "railway", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "imperative (default steps): Failed")
	assert.Contains(t, out, "half railway: Ok")
	assert.Contains(t, out, "either: Ok (HELLO)")
	assert.Contains(t, out, "imperative/optional/either: Ok/Ok/Ok")

	out, err = run(t, "railway", "--fail", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "imperative/optional/either: Failed/Failed/Failed")

	out, err = run(t, "railway")
	require.NoError(t, err)
	assert.Contains(t, out, "half railway: Failed")
}

func TestOutParam(t *testing.T) {
	out, err := run(t, "outparam", "7", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "after Foo: 5")
	assert.Contains(t, out, `"7": ok 7`)
	assert.Contains(t, out, `"x": failed invalid quantity`)
}

func TestTailCall_Trampoline(t *testing.T) {
	out, err := run(t, "tailcall", "--limit", "25000")
	require.NoError(t, err)
	assert.Contains(t, out, "trampoline reached 25000 in constant stack")
}

func TestLogFormat_Invalid(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "points")
	assert.Error(t, err)

	t.Setenv("FPIDIOMS_LOG_FORMAT", "xml")
	_, err = run(t, "points")
	assert.Error(t, err)
}

func TestLogFormat_FlagOverridesEnv(t *testing.T) {
	t.Setenv("FPIDIOMS_LOG_FORMAT", "xml")

	out, err := run(t, "--log-format", "json", "points")
	require.NoError(t, err)
	assert.Contains(t, out, "PointClass equal: false")
}

func TestQuiet(t *testing.T) {
	out, err := run(t, "--quiet", "points")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "-q", "filter")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSink_CountsBytes(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)

	a := &app{}
	_, err := fmt.Fprintf(a.out(cmd), "one\ntwo\n")
	require.NoError(t, err)
	assert.Equal(t, "  one\n  two\n", buf.String())
	assert.Equal(t, int64(12), a.written, "indentation is counted")

	a.quiet = true
	_, err = fmt.Fprint(a.sink(cmd), "hidden")
	require.NoError(t, err)
	assert.Equal(t, "  one\n  two\n", buf.String())
	assert.Equal(t, int64(18), a.written)
}

func TestTrades_EnvCasesFileDoesNotStick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trades:\n  - id: small\n    amount: \"10\"\n"), 0o600))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	t.Setenv("FPIDIOMS_CASES_FILE", path)
	cmd.SetArgs([]string{"trades"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "TradeRecord{TradeID: small, Amount: 10}")

	out.Reset()
	t.Setenv("FPIDIOMS_CASES_FILE", "")
	cmd.SetArgs([]string{"trades"})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, out.String(), "TradeID: small")
	assert.Contains(t, out.String(), "TradeRecord{TradeID: 998765, Amount: 123.45}")
}
