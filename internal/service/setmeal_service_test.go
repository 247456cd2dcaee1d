package service_test

import (
	"context"
	"errors"
	"testing"

	"menuadmin/internal/apierror"
	"menuadmin/internal/authctx"
	"menuadmin/internal/dto"
	"menuadmin/internal/model"
	"menuadmin/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setmealFixture struct {
	svc    service.SetmealService
	meals  *stubSetmealRepo
	assocs *stubSetmealDishRepo
}

func newSetmealFixture() setmealFixture {
	f := setmealFixture{meals: newStubSetmealRepo(), assocs: &stubSetmealDishRepo{}}
	f.svc = service.NewSetmealService(f.meals, f.assocs)
	return f
}

func setmealReq(name string, status int, dishIDs ...int64) dto.SetmealRequest {
	req := dto.SetmealRequest{
		CategoryID: 13,
		Name:       name,
		Price:      decimal.NewFromInt(48),
		Status:     status,
	}
	for _, id := range dishIDs {
		req.SetmealDishes = append(req.SetmealDishes, dto.SetmealDishDTO{DishID: id, Copies: 1})
	}
	return req
}

func dishIDsOf(vo *dto.SetmealVO) []int64 {
	ids := make([]int64, 0, len(vo.SetmealDishes))
	for _, sd := range vo.SetmealDishes {
		ids = append(ids, sd.DishID)
	}
	return ids
}

func (f setmealFixture) save(t *testing.T, req dto.SetmealRequest) int64 {
	t.Helper()
	id, err := f.svc.SaveWithDish(context.Background(), req)
	require.NoError(t, err)
	return id
}

// ── SaveWithDish / GetByIDWithDish ────────────────────────────────────────────

func TestSetmealSaveWithDish_Combo1RoundTrip(t *testing.T) {
	f := newSetmealFixture()
	ctx := context.Background()

	id, err := f.svc.SaveWithDish(ctx, setmealReq("Combo1", model.StatusDisable, 7))
	require.NoError(t, err)

	vo, err := f.svc.GetByIDWithDish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Combo1", vo.Name)
	require.Len(t, vo.SetmealDishes, 1)
	assert.Equal(t, int64(7), vo.SetmealDishes[0].DishID)
	assert.Equal(t, 1, vo.SetmealDishes[0].Copies)
	assert.Equal(t, id, vo.SetmealDishes[0].SetmealID)
}

func TestSetmealSaveWithDish_StampsEveryAssociation(t *testing.T) {
	f := newSetmealFixture()
	req := setmealReq("Family Pack", model.StatusDisable, 1, 2, 3)
	for i := range req.SetmealDishes {
		req.SetmealDishes[i].SetmealID = 999
	}
	ctx := authctx.WithEmployeeID(context.Background(), 5)

	id, err := f.svc.SaveWithDish(ctx, req)
	require.NoError(t, err)

	vo, err := f.svc.GetByIDWithDish(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, dishIDsOf(vo))
	for _, sd := range vo.SetmealDishes {
		assert.Equal(t, id, sd.SetmealID)
	}
	assert.Equal(t, int64(5), f.meals.rows[id].CreateUser)
}

func TestSetmealSaveWithDish_InvalidStatus(t *testing.T) {
	f := newSetmealFixture()
	_, err := f.svc.SaveWithDish(context.Background(), setmealReq("Bad", 3, 1))
	assert.True(t, apierror.Is(err, apierror.KindValidation))
	assert.Empty(t, f.meals.rows)
}

func TestSetmealGetByIDWithDish_Missing(t *testing.T) {
	f := newSetmealFixture()
	_, err := f.svc.GetByIDWithDish(context.Background(), 77)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
}

// ── DeleteBatch ───────────────────────────────────────────────────────────────

func TestSetmealDeleteBatch_EnabledRejectsWholeBatch(t *testing.T) {
	f := newSetmealFixture()
	ctx := context.Background()
	safe := f.save(t, setmealReq("Safe", model.StatusDisable, 1))
	onSale := f.save(t, setmealReq("OnSale", model.StatusEnable, 2))

	err := f.svc.DeleteBatch(ctx, []int64{safe, onSale})
	require.Error(t, err)
	assert.True(t, apierror.Is(err, apierror.KindBusinessRule))
	assert.Equal(t, service.MsgSetmealOnSale, apierror.PublicMessage(err))

	assert.Empty(t, f.meals.deleted, "no id in the batch may be deleted")
	_, err = f.svc.GetByIDWithDish(ctx, safe)
	assert.NoError(t, err)
	assert.Len(t, f.assocs.rows, 2)
}

func TestSetmealDeleteBatch_DisabledRemovesRowsAndAssociations(t *testing.T) {
	f := newSetmealFixture()
	ctx := context.Background()
	a := f.save(t, setmealReq("A", model.StatusDisable, 1, 2))
	b := f.save(t, setmealReq("B", model.StatusDisable, 3))
	keep := f.save(t, setmealReq("Keep", model.StatusEnable, 4))

	require.NoError(t, f.svc.DeleteBatch(ctx, []int64{a, b}))

	for _, id := range []int64{a, b} {
		_, err := f.svc.GetByIDWithDish(ctx, id)
		assert.True(t, apierror.Is(err, apierror.KindNotFound))
	}
	require.Len(t, f.assocs.rows, 1)
	assert.Equal(t, keep, f.assocs.rows[0].SetmealID)
}

func TestSetmealDeleteBatch_MissingIDIsNotFound(t *testing.T) {
	f := newSetmealFixture()
	a := f.save(t, setmealReq("A", model.StatusDisable, 1))

	err := f.svc.DeleteBatch(context.Background(), []int64{a, 404})
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
	assert.Empty(t, f.meals.deleted)
}

func TestSetmealDeleteBatch_EmptyIDs(t *testing.T) {
	f := newSetmealFixture()
	err := f.svc.DeleteBatch(context.Background(), []int64{})
	assert.True(t, apierror.Is(err, apierror.KindValidation))
}

func TestSetmealStartThenDelete_Rejected(t *testing.T) {
	f := newSetmealFixture()
	ctx := context.Background()
	id := f.save(t, setmealReq("Lunch", model.StatusDisable, 1))

	require.NoError(t, f.svc.StartOrStop(ctx, model.StatusEnable, id))

	err := f.svc.DeleteBatch(ctx, []int64{id})
	assert.True(t, apierror.Is(err, apierror.KindBusinessRule))

	vo, err := f.svc.GetByIDWithDish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEnable, vo.Status)

	require.NoError(t, f.svc.StartOrStop(ctx, model.StatusDisable, id))
	require.NoError(t, f.svc.DeleteBatch(ctx, []int64{id}))
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestSetmealUpdate_ReplacesAssociationSet(t *testing.T) {
	f := newSetmealFixture()
	ctx := context.Background()
	id := f.save(t, setmealReq("Combo", model.StatusDisable, 10, 11))

	req := setmealReq("Combo v2", model.StatusDisable, 12)
	req.ID = id
	require.NoError(t, f.svc.Update(ctx, req))

	vo, err := f.svc.GetByIDWithDish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Combo v2", vo.Name)
	assert.Equal(t, []int64{12}, dishIDsOf(vo))
	assert.Equal(t, id, vo.SetmealDishes[0].SetmealID)
}

func TestSetmealUpdate_DoesNotChangeStatus(t *testing.T) {
	f := newSetmealFixture()
	ctx := context.Background()
	id := f.save(t, setmealReq("Dinner", model.StatusEnable, 1))

	req := setmealReq("Dinner", model.StatusDisable, 1)
	req.ID = id
	require.NoError(t, f.svc.Update(ctx, req))

	vo, err := f.svc.GetByIDWithDish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEnable, vo.Status)
}

func TestSetmealUpdate_Missing(t *testing.T) {
	f := newSetmealFixture()
	req := setmealReq("Ghost", model.StatusDisable, 1)
	req.ID = 404

	err := f.svc.Update(context.Background(), req)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
	assert.Empty(t, f.assocs.rows)
}

// ── StartOrStop ───────────────────────────────────────────────────────────────

func TestSetmealStartOrStop(t *testing.T) {
	f := newSetmealFixture()
	ctx := authctx.WithEmployeeID(context.Background(), 9)
	id := f.save(t, setmealReq("Breakfast", model.StatusDisable, 1, 2))

	require.NoError(t, f.svc.StartOrStop(ctx, model.StatusEnable, id))
	assert.Equal(t, model.StatusEnable, f.meals.rows[id].Status)
	assert.Equal(t, int64(9), f.meals.rows[id].UpdateUser)
	assert.Len(t, f.assocs.rows, 2, "associations untouched")

	err := f.svc.StartOrStop(ctx, 2, id)
	assert.True(t, apierror.Is(err, apierror.KindValidation))

	err = f.svc.StartOrStop(ctx, model.StatusEnable, 404)
	assert.True(t, apierror.Is(err, apierror.KindNotFound))
}

func TestSetmealStartOrStop_StoreFailure(t *testing.T) {
	f := newSetmealFixture()
	f.meals.statusErr = errors.New("connection reset")

	err := f.svc.StartOrStop(context.Background(), model.StatusEnable, 1)
	assert.True(t, apierror.Is(err, apierror.KindPersistence))
	assert.Equal(t, "internal server error", apierror.PublicMessage(err))
}

// ── PageQuery ─────────────────────────────────────────────────────────────────

func TestSetmealPageQuery_StatusFilter(t *testing.T) {
	f := newSetmealFixture()
	f.save(t, setmealReq("A", model.StatusEnable, 1))
	f.save(t, setmealReq("B", model.StatusDisable, 1))
	f.save(t, setmealReq("C", model.StatusEnable, 1))

	enabled := model.StatusEnable
	res, err := f.svc.PageQuery(context.Background(), dto.SetmealPageQuery{Status: &enabled})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Len(t, res.Records, 2)
}
