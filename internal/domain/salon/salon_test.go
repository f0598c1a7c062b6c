package salon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestListFilterNormalize(t *testing.T) {
	f := ListFilter{Page: -2, PerPage: 0, Cidade: "  Porto "}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPerPage, f.PerPage)
	assert.Equal(t, "Porto", f.Cidade)
	assert.Equal(t, 0, f.Offset())

	f = ListFilter{Page: 3, PerPage: 500}.Normalize()
	assert.Equal(t, MaxPerPage, f.PerPage)
	assert.Equal(t, 200, f.Offset())
}

func TestPages(t *testing.T) {
	assert.Equal(t, 0, Pages(0, 20))
	assert.Equal(t, 1, Pages(20, 20))
	assert.Equal(t, 2, Pages(21, 20))
	assert.Equal(t, 0, Pages(5, 0))
}

func TestUpdateApplyOnlyTouchesProvidedFields(t *testing.T) {
	s := &models.Salon{Nome: "Old", Cidade: "Lisboa", Telefone: "1"}
	nome := "New"
	Update{Nome: &nome}.Apply(s)

	assert.Equal(t, "New", s.Nome)
	assert.Equal(t, "Lisboa", s.Cidade)
	assert.Equal(t, "1", s.Telefone)
}
