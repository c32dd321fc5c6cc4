package errors

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder_Basic(t *testing.T) {
	base := stderrors.New("segment out of range")

	ee := New(base).
		Component("annotation").
		Category(CategoryValidation).
		Context("start", 5.0).
		Context("end", 3.0).
		Build()

	assert.Equal(t, "segment out of range", ee.Error())
	assert.Equal(t, "annotation", ee.GetComponent())
	assert.Equal(t, string(CategoryValidation), ee.GetCategory())
	assert.False(t, ee.GetTimestamp().IsZero())

	ctx := ee.GetContext()
	require.NotNil(t, ctx)
	assert.Equal(t, 5.0, ctx["start"])
	assert.Equal(t, 3.0, ctx["end"])

	// The returned context is a copy.
	ctx["start"] = 99.0
	assert.Equal(t, 5.0, ee.GetContext()["start"])
}

func TestErrorBuilder_Defaults(t *testing.T) {
	ee := Newf("something %s happened", "odd").Build()

	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.Equal(t, ComponentUnknown, ee.GetComponent())
	assert.Empty(t, ee.GetPriority())
}

func TestErrorBuilder_PriorityValidation(t *testing.T) {
	assert.Equal(t, PriorityHigh, Newf("x").Priority(PriorityHigh).Build().GetPriority())
	assert.Equal(t, PriorityMedium, Newf("x").Priority("bogus").Build().GetPriority(),
		"invalid priority falls back to medium")
	assert.Empty(t, Newf("x").Priority("").Build().GetPriority())
}

func TestEnhancedError_Unwrap(t *testing.T) {
	sentinel := NewStd("not found")
	ee := New(sentinel).Category(CategoryNotFound).Build()

	assert.True(t, Is(ee, sentinel), "wrapped sentinel remains matchable")
}

func TestEnhancedError_IsMatchesByCategory(t *testing.T) {
	a := Newf("a").Category(CategoryDatabase).Build()
	b := Newf("b").Category(CategoryDatabase).Build()
	c := Newf("c").Category(CategoryValidation).Build()

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
}

// stubReporter records reported errors.
type stubReporter struct {
	mu       sync.Mutex
	reported []*EnhancedError
}

func (r *stubReporter) Report(ee *EnhancedError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reported = append(r.reported, ee)
}

func (r *stubReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reported)
}

func TestReporterIntegration(t *testing.T) {
	reporter := &stubReporter{}
	SetReporter(reporter)
	t.Cleanup(func() { SetReporter(nil) })

	ee := Newf("disk full").Category(CategoryFileIO).Component("datastore").Build()

	assert.Equal(t, 1, reporter.count())
	assert.True(t, ee.IsReported())
}

func TestNoReporterFastPath(t *testing.T) {
	SetReporter(nil)

	ee := Newf("quiet").Build()
	assert.False(t, ee.IsReported())
}

func TestJoin(t *testing.T) {
	a := NewStd("a")
	b := NewStd("b")
	joined := Join(a, b)

	assert.True(t, Is(joined, a))
	assert.True(t, Is(joined, b))
}
