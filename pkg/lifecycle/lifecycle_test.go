package lifecycle_test

import (
	"testing"

	"github.com/crashwx/crashwx/internal/iodb"
	"github.com/crashwx/crashwx/internal/ioexport"
	"github.com/crashwx/crashwx/internal/iopopulate"
	"github.com/crashwx/crashwx/internal/ioschema"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/crashwx/crashwx/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestContracts fails to compile if an implementation drifts from its
// lifecycle interface.
func TestContracts(t *testing.T) {
	cfg := config.New()
	op := iodb.NewPgxOperator()

	var sm lifecycle.SchemaManager = ioschema.NewManager(cfg, op)
	var p lifecycle.Populator = iopopulate.New(cfg, op)
	var e lifecycle.Exporter = ioexport.New(cfg, op)

	assert.NotNil(t, sm)
	assert.NotNil(t, p)
	assert.NotNil(t, e)
}
