package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTravelAgentApp_Initializers(t *testing.T) {
	app := NewTravelAgentApp()
	require.NotNil(t, app, "NewTravelAgentApp should not return nil")
}
