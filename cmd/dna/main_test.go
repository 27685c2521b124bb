package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runLog(t, stdin, args...)
	return out, err
}

// runLog return stdout and log output
func runLog(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, log bytes.Buffer
	a, cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	err := a.execute(cmd)
	return out.String(), log.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, `DNA Sequence: ATGCGTATAGCGCTTAAATGCGCTGA
GC Content: 46.15%
RNA Sequence: AUGCGUAUAGCGCUUAAAUGCGCUGA
Open Reading Frames:
Start: 0, End: 10, ORF: ATGCGTATAG
Start: 17, End: 26, ORF: ATGCGCTGA
Start: 17, End: 26, ORF: ATGCGCTGA
Start: 17, End: 26, ORF: ATGCGCTGA
`, out)
}

func TestDemoEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Demo(&buf, "", 0))
}

func TestORF(t *testing.T) {
	out, err := run(t, "", "orf", "--seq", strings.ToLower(demoSeq), "-m", "9", "--translate")
	require.NoError(t, err)
	assert.Equal(t, "Index\tFrame\tStart\tEnd\tLength\tORF\tProtein\n"+
		"1\t0\t0\t10\t10\tATGCGTATAG\t-\n"+
		"1\t0\t17\t26\t9\tATGCGCTGA\tMR*\n"+
		"1\t1\t17\t26\t9\tATGCGCTGA\tMR*\n"+
		"1\t2\t17\t26\t9\tATGCGCTGA\tMR*\n", out)
}

func TestORFConfig(t *testing.T) {
	input := writeFile(t, "seq.txt", "ATGTAA\n\nccATGAAATGA\n")
	cfg := writeFile(t, "dna.yaml", "orf:\n  min-length: 9\n")
	output := filepath.Join(t.TempDir(), "orf.tsv")

	_, err := run(t, "", "orf", "--config", cfg, "-i", input, "-o", output)
	require.NoError(t, err)
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Index\tFrame\tStart\tEnd\tLength\tORF\n"+
		"2\t0\t2\t11\t9\tATGAAATGA\n"+
		"2\t1\t2\t11\t9\tATGAAATGA\n"+
		"2\t2\t2\t11\t9\tATGAAATGA\n", string(got))

	// flag wins over config
	out, err := run(t, "", "orf", "--config", cfg, "-i", input, "-m", "0")
	require.NoError(t, err)
	assert.Equal(t, "Index\tFrame\tStart\tEnd\tLength\tORF\n"+
		"1\t0\t0\t6\t6\tATGTAA\n"+
		"2\t0\t2\t11\t9\tATGAAATGA\n"+
		"2\t1\t2\t11\t9\tATGAAATGA\n"+
		"2\t2\t2\t11\t9\tATGAAATGA\n", out)
}

func TestORFJoin(t *testing.T) {
	input := writeFile(t, "seq.txt", "ATGCGTATAG\nCGCTTAAATG\nCGCTGA\n")
	out, err := run(t, "", "orf", "-i", input, "--join", "-m", "10")
	require.NoError(t, err)
	assert.Equal(t, "Index\tFrame\tStart\tEnd\tLength\tORF\n"+
		"1\t0\t0\t10\t10\tATGCGTATAG\n", out)
}

func TestORFDefaultMinLength(t *testing.T) {
	out, err := run(t, "", "orf", "-s", demoSeq)
	require.NoError(t, err)
	assert.Equal(t, "Index\tFrame\tStart\tEnd\tLength\tORF\n", out)
}

func TestNoInput(t *testing.T) {
	for _, name := range []string{"orf", "gc", "transcribe"} {
		_, err := run(t, "", name)
		assert.ErrorIs(t, err, errNoInput, name)
	}
}

func TestTranscribeStdin(t *testing.T) {
	out, err := run(t, "atgc\nTTTT\n", "transcribe", "-i", "-")
	require.NoError(t, err)
	assert.Equal(t, "AUGC\nUUUU\n", out)
}

func TestGC(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, "seq.txt", "ATGCATGCATGCATGCATGC\nGGGGCCCCGGGGCCCCGGGG\nNNNNATGCATGCATGCATGC\n")
	output := filepath.Join(dir, "gc.txt")
	hist := filepath.Join(dir, "gc.hist")
	plot := filepath.Join(dir, "gc.png")

	_, err := run(t, "", "gc", "-i", input, "-o", output, "--tm", "--hist", hist, "--plot", plot, "--bins", "5")
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "ATGCATGCATGCATGCATGC\t50.00\t57.30\n"+
		"GGGGCCCCGGGGCCCCGGGG\t100.00\t77.80\n"+
		"NNNNATGCATGCATGCATGC\t40.00\t53.20\n", string(got))

	got, err = os.ReadFile(hist)
	require.NoError(t, err)
	assert.Equal(t, "40.00\t1\n50.00\t1\n100.00\t1\n", string(got))

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestGCSeq(t *testing.T) {
	out, err := run(t, "", "gc", "-s", demoSeq)
	require.NoError(t, err)
	assert.Equal(t, demoSeq+"\t46.15\n", out)
}

func TestCPUProfileStoppedOnError(t *testing.T) {
	prof := filepath.Join(t.TempDir(), "cpu.prof")
	_, log, err := runLog(t, "", "orf", "--cpu", prof)
	assert.ErrorIs(t, err, errNoInput)
	assert.Contains(t, log, "msg=Done")

	info, err := os.Stat(prof)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	f, err := os.Create(filepath.Join(t.TempDir(), "again.prof"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, pprof.StartCPUProfile(f))
	pprof.StopCPUProfile()
}

func TestLog(t *testing.T) {
	out, log, err := runLog(t, "", "orf", "-s", "ATGNNNTAA", "-m", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "1\t0\t0\t9\t9\tATGNNNTAA\n")
	assert.Contains(t, log, `level=WARN msg="non-ACGT base" index=1 length=9`)
	assert.NotContains(t, log, "level=DEBUG")

	_, log, err = runLog(t, "", "orf", "-s", "ATGNNNTAA", "-m", "0", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, log, "level=WARN")
	assert.Contains(t, log, "level=DEBUG msg=load")
}
