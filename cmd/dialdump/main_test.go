package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffIX/PoserLib/depgraph"
)

const andyYAML = `
frames: 5
frame: 2
figures:
  - name: Andy
    customData:
      Keys: "PoseName#3;PoseName"
      PoseName: walk.pz2
      "PoseName#3": walk.pz2
actors:
  - name: hip
    figure: Andy
    parameters:
      - name: bend
        keys:
          - {frame: 0, value: 0, interp: linear}
          - {frame: 4, value: 4, interp: linear}
        ops:
          - type: valueOpDeltaAdd
            source: {actor: CTRL, parm: dial}
            delta: 0.5
  - name: CTRL
    type: prop
    controlProp: true
    parameters:
      - name: dial
        value: 4
animSets:
  - name: walk
    attributes:
      - {key: Name, value: Walk Cycle}
    parameters:
      - {actor: hip, parm: bend}
      - {actor: CTRL, parm: dial}
`

const brokenYAML = `
frames: 5
actors:
  - name: hip
    parameters:
      - name: bend
        value: 1
        ops:
          - type: valueOpPlus
            source: {actor: Ghost, parm: missing}
      - name: a
        ops:
          - type: valueOpPlus
            source: {actor: hip, parm: b}
      - name: b
        ops:
          - type: valueOpPlus
            source: {actor: hip, parm: a}
`

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestDial(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)
	for _, legacy := range []string{"--legacy=false", "--legacy=true"} {
		out, err := run(t, "dial", "--scene", path, "--actor", "hip", "--parm", "bend", legacy)
		require.NoError(t, err, legacy)
		assert.Equal(t, "bend 2\n", out, legacy)
	}
}

func TestRangeAndAnimation(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)

	out, err := run(t, "range", "--scene", path, "--actor", "hip", "--parm", "bend", "--first", "0", "--last", "2")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n1 1\n2 2\n", out)

	out, err = run(t, "animation", "--scene", path, "--actor", "hip", "--parm", "bend", "--last", "1")
	require.NoError(t, err)
	assert.Equal(t, "0 0 key,linear\n1 1 linear\n", out)

	_, err = run(t, "range", "--scene", path, "--actor", "hip", "--parm", "bend", "--first", "3", "--last", "9")
	assert.Error(t, err)
}

func TestEstimate(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)
	out, err := run(t, "estimate", "--scene", path, "--actor", "hip", "--parm", "bend")
	require.NoError(t, err)
	assert.Equal(t, "value 4\nestimate 2\n", out)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "--scene", writeFixture(t, "andy.yaml", andyYAML), "--actor", "hip", "--parm", "bend")
	require.NoError(t, err)
	assert.Contains(t, out, "hip, bend has 1 value operation\n")
	assert.Contains(t, out, "deltaAddDelta 0.500000")

	out, err = run(t, "describe", "--scene", writeFixture(t, "broken.yaml", brokenYAML), "--actor", "hip", "--parm", "bend")
	assert.ErrorIs(t, err, errMalformed)
	assert.Contains(t, out, "***WARNING***")
	assert.Contains(t, out, "valueOpPlus SourceParameter is nil")
}

func TestGraph(t *testing.T) {
	out, err := run(t, "graph", "--scene", writeFixture(t, "andy.yaml", andyYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "_NO_FIG_/CTRL/dial -> Andy/hip/bend (valueOpDeltaAdd #0)\n")
	assert.Contains(t, out, "order:\n")
	assert.Less(t, bytes.Index([]byte(out), []byte("  _NO_FIG_/CTRL/dial")), bytes.Index([]byte(out), []byte("  Andy/hip/bend")))

	out, err = run(t, "graph", "--scene", writeFixture(t, "broken.yaml", brokenYAML))
	assert.ErrorIs(t, err, depgraph.ErrCycleDetected)
	assert.Contains(t, out, "unresolved _NO_FIG_/hip/bend operation 0 (valueOpPlus)\n")
	assert.Contains(t, out, "cycle ")
}

func TestProbe(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)

	out, err := run(t, "probe", "--scene", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unaffected_value true\n")
	assert.Contains(t, out, "insert_value_operation true\n")

	out, err = run(t, "probe", "--scene", path, "--legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "unaffected_value false\n")
	assert.Contains(t, out, "insert_value_operation false\n")
}

func TestMetrics(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)
	out, err := run(t, "dial", "--scene", path, "--actor", "hip", "--parm", "bend", "--legacy", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "dialvalue_extract_total 1\n")
	assert.Contains(t, out, "dialvalue_restore_total 1\n")
}

func TestWriteMetrics_SeparatesLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "demo_total", Help: "demo"}, []string{"path", "result"})
	reg.MustRegister(vec)
	vec.WithLabelValues("slow", "ok").Add(2)

	var buf bytes.Buffer
	writeMetrics(&buf, reg)
	assert.Equal(t, "demo_total{path=\"slow\",result=\"ok\"} 2\n", buf.String())
}

func TestUnits(t *testing.T) {
	out, err := run(t, "units", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 PNU = 2 PNU (5242.56 mm)\n", out)

	dir := t.TempDir()
	prefsFile := "UNIT_SCALE_FACTOR 10\nUNIT_SCALE_TYPE 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Poser Prefs"), []byte(prefsFile), 0o644))
	out, err = run(t, "units", "2", "--prefs-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "2 PNU = 20 cm (5242.56 mm)\n", out)

	_, err = run(t, "units", "two")
	assert.Error(t, err)
}

func TestCustomDataAndAnimSets(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)

	out, err := run(t, "customdata", "--scene", path)
	require.NoError(t, err)
	assert.Equal(t, "Andy PoseName=\"walk.pz2\"\nAndy PoseName#3=\"walk.pz2\"\n", out)

	out, err = run(t, "animsets", "--scene", path)
	require.NoError(t, err)
	assert.Equal(t, "Walk Cycle\n  hip: bend\n  CTRL: dial\n", out)
}

func TestMissingFlags(t *testing.T) {
	_, err := run(t, "dial")
	assert.Error(t, err)

	_, err = run(t, "dial", "--scene", writeFixture(t, "andy.yaml", andyYAML))
	assert.Error(t, err)

	_, err = run(t, "dial", "--scene", "x.yaml", "--log-level", "loud")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	good := writeFixture(t, "andy.yaml", andyYAML)
	bad := writeFixture(t, "broken.yaml", brokenYAML)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok (2 parameters, 1 operations)\n", out)

	out, err = run(t, "check", "--jobs", "2", good, bad, missing)
	assert.ErrorIs(t, err, errMalformed)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, good+": ok (2 parameters, 1 operations)", lines[0])
	assert.Equal(t, bad+": 1 corrupt operations, 1 cycles", lines[1])
	assert.Equal(t, "  corrupt _NO_FIG_/hip/bend operation 0 (valueOpPlus)", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], missing+": error: "), lines[3])

	_, err = run(t, "check")
	assert.Error(t, err)
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"watch", "--scene", path, "--actor", "hip", "--parm", "bend"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "dial 2\n") }, 5*time.Second, 10*time.Millisecond)

	// Move the active frame so the dial value changes.
	changed := strings.Replace(andyYAML, "frame: 2\n", "frame: 3\n", 1)
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(changed), 0o644)
		return strings.Contains(out.String(), "dial 3\n")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestImpact(t *testing.T) {
	path := writeFixture(t, "andy.yaml", andyYAML)

	out, err := run(t, "impact", "--scene", path, "--actor", "CTRL", "--parm", "dial")
	require.NoError(t, err)
	assert.Equal(t, "1 _NO_FIG_/CTRL/dial -> Andy/hip/bend\n", out)

	out, err = run(t, "impact", "--scene", path, "--actor", "hip", "--parm", "bend")
	require.NoError(t, err)
	assert.Empty(t, out)
}
