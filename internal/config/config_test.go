package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsFreshState(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	st, err := Load()
	require.NoError(t, err)

	_, err = uuid.Parse(st.SurfaceID)
	assert.NoError(t, err)
	assert.NotEmpty(t, st.DAWInPort)
	assert.NotEmpty(t, st.DAWOutPort)
}

func TestStateRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	st := NewState()
	st.DAWInPort = "custom daw in"
	st.DAWOutPort = "custom daw out"
	require.NoError(t, st.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, st.SurfaceID, loaded.SurfaceID)
	assert.Equal(t, "custom daw in", loaded.DAWInPort)
	assert.Equal(t, "custom daw out", loaded.DAWOutPort)
}

func TestLoadFillsMissingFields(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	st := &State{}
	require.NoError(t, st.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.SurfaceID)
	assert.NotEmpty(t, loaded.DAWInPort)
	assert.NotEmpty(t, loaded.DAWOutPort)
}
