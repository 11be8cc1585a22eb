package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/fndecorate/internal/adapter"
	"github.com/mouse-blink/fndecorate/internal/domain"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

func TestEmitCmd(t *testing.T) {
	mockWorkflow := withMocks(t, adapter.Config{})
	mockWorkflow.EXPECT().Emit(domain.EmitArgs{Path: m.Path("pkg/a.go")}).Return(nil)

	require.NoError(t, newTestRootCmd("emit", "pkg/a.go").Execute())
}

func TestEmitCmd_RequiresOneFile(t *testing.T) {
	withMocks(t, adapter.Config{})

	assert.Error(t, newTestRootCmd("emit").Execute())
	assert.Error(t, newTestRootCmd("emit", "a.go", "b.go").Execute())
}
