package kv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbmrq/devtracker/internal/logging"
)

type item struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

func newTestStore(t *testing.T) (*Store, *MemoryBackend) {
	t.Helper()
	mem := NewMemoryBackend()
	return NewStore(mem, logging.NewNoop()), mem
}

func TestStore_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	want := []item{
		{ID: "task_b", Text: "Polish jumpscare", Status: "doing"},
		{ID: "task_a", Text: "Add sprint anim", Status: "todo"},
	}
	s.Save("devtracker_tasks", want)

	got := Load(s, "devtracker_tasks", []item{})
	assert.Equal(t, want, got)
}

func TestLoad_AbsentKeyReturnsFallback(t *testing.T) {
	s, _ := newTestStore(t)

	fallback := []item{{ID: "x"}}
	assert.Equal(t, fallback, Load(s, "missing", fallback))
}

func TestLoad_CorruptedValueReturnsFallback(t *testing.T) {
	s, mem := newTestStore(t)
	require.NoError(t, mem.Set("devtracker_tasks", []byte("{not json")))

	got := Load(s, "devtracker_tasks", []item{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_WrongShapeReturnsFallback(t *testing.T) {
	s, mem := newTestStore(t)
	require.NoError(t, mem.Set("devtracker_meta", []byte(`["not","an","object"]`)))

	type meta struct {
		ProjectName string `json:"projectName"`
	}
	got := Load(s, "devtracker_meta", meta{ProjectName: "prior"})
	assert.Equal(t, "prior", got.ProjectName)
}

func TestLoad_ValidJSONMissingFieldsIsTrusted(t *testing.T) {
	s, mem := newTestStore(t)
	require.NoError(t, mem.Set("devtracker_tasks", []byte(`[{"id":"task_1"}]`)))

	got := Load(s, "devtracker_tasks", []item{})
	require.Len(t, got, 1)
	assert.Equal(t, "task_1", got[0].ID)
	assert.Empty(t, got[0].Text)
}

func TestStore_UnavailableBackend(t *testing.T) {
	s := NewStore(Unavailable{}, logging.NewNoop())

	assert.NotPanics(t, func() { s.Save("devtracker_checks", map[string]bool{"rn": true}) })
	assert.Equal(t, map[string]bool{"qa": false}, Load(s, "devtracker_checks", map[string]bool{"qa": false}))
}

func TestStore_NilBackendIsUnavailable(t *testing.T) {
	s := NewStore(nil, nil)
	assert.Equal(t, "unavailable", Name(s.Backend()))
	assert.NotPanics(t, func() { s.Persist("k", 1) })
	assert.Equal(t, 7, Load(s, "k", 7))
}

func TestStore_UnencodableValueIsDropped(t *testing.T) {
	s, mem := newTestStore(t)

	s.Save("bad", make(chan int))
	assert.Empty(t, mem.Keys())
}

func TestStore_PersistIsSynchronous(t *testing.T) {
	s, mem := newTestStore(t)

	s.Persist("devtracker_meta", map[string]string{"projectName": "Crypt"})

	data, err := mem.Get("devtracker_meta")
	require.NoError(t, err)
	assert.JSONEq(t, `{"projectName":"Crypt"}`, string(data))
}

func TestStore_LogsCarryStorageKey(t *testing.T) {
	var buf bytes.Buffer
	s := NewStore(Unavailable{}, logging.NewWriter(&buf, nil))

	s.Save("devtracker_checks", map[string]bool{"qa": true})
	_ = Load(s, "devtracker_meta", struct{}{})

	out := buf.String()
	assert.Contains(t, out, "key=devtracker_checks")
	assert.Contains(t, out, "key=devtracker_meta")
	assert.Contains(t, out, "component=kv")
}
