package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velora-studio/booking-api/internal/model"
	"github.com/velora-studio/booking-api/internal/service/catalog"
)

func testCalculator() *Calculator {
	return NewCalculator(catalog.New(catalog.DefaultServices()))
}

func TestTotalsEmptySelection(t *testing.T) {
	calc := testCalculator()
	sel := model.NewSelection()

	assert.Equal(t, int64(0), calc.TotalCents(sel))
	assert.Equal(t, 0, calc.TotalDurationMin(sel))
}

func TestTotalsSingleService(t *testing.T) {
	calc := testCalculator()
	sel := model.NewSelection()
	sel.AddService("haircut")

	assert.Equal(t, int64(6500), calc.TotalCents(sel))
	assert.Equal(t, 60, calc.TotalDurationMin(sel))
}

func TestTotalsAdditive(t *testing.T) {
	calc := testCalculator()
	sel := model.NewSelection()
	sel.AddService("haircut")
	sel.AddAddon("haircut", "deep-condition")
	sel.AddService("manicure")
	sel.AddAddon("manicure", "gel-polish")

	// 6500 + 2000 + 3500 + 1500
	assert.Equal(t, int64(13500), calc.TotalCents(sel))
	// 60 + 15 + 30 + 15
	assert.Equal(t, 120, calc.TotalDurationMin(sel))
}

func TestTotalsUnknownIDsContributeZero(t *testing.T) {
	calc := testCalculator()
	sel := model.NewSelection()
	sel.AddService("haircut")
	sel.AddService("cryotherapy")
	sel.AddAddon("haircut", "no-such-addon")

	assert.Equal(t, int64(6500), calc.TotalCents(sel))
	assert.Equal(t, 60, calc.TotalDurationMin(sel))
}

func TestTotalsDropWithParentService(t *testing.T) {
	calc := testCalculator()
	sel := model.NewSelection()
	sel.AddService("haircut")
	sel.AddAddon("haircut", "blowout")
	sel.RemoveService("haircut")

	assert.Equal(t, int64(0), calc.TotalCents(sel))
	assert.Equal(t, 0, calc.TotalDurationMin(sel))
}
