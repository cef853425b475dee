package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
	"github.com/lgu-seal/sglgb-backend/repositories"
)

type fakeTransactionFactory struct{}

func (fakeTransactionFactory) Executor() repositories.Executor { return nil }

func (fakeTransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return fn(nil)
}

type mockChecklistRepository struct {
	mock.Mock
}

func (m *mockChecklistRepository) GetChecklist(ctx context.Context, exec repositories.Executor, id string) (models.ChecklistRecord, error) {
	args := m.Called(ctx, exec, id)
	return args.Get(0).(models.ChecklistRecord), args.Error(1)
}

func (m *mockChecklistRepository) ListChecklistsForIndicator(ctx context.Context, exec repositories.Executor, indicatorId string) ([]models.ChecklistRecord, error) {
	args := m.Called(ctx, exec, indicatorId)
	return args.Get(0).([]models.ChecklistRecord), args.Error(1)
}

func (m *mockChecklistRepository) CreateChecklist(ctx context.Context, exec repositories.Executor, input models.CreateChecklistInput, newChecklistId string) error {
	args := m.Called(ctx, exec, input, newChecklistId)
	return args.Error(0)
}

func (m *mockChecklistRepository) UpdateChecklist(ctx context.Context, exec repositories.Executor, input models.UpdateChecklistInput) error {
	args := m.Called(ctx, exec, input)
	return args.Error(0)
}

func (m *mockChecklistRepository) PublishChecklist(ctx context.Context, exec repositories.Executor, id string) error {
	args := m.Called(ctx, exec, id)
	return args.Error(0)
}

func newChecklistUsecase(repo *mockChecklistRepository) ChecklistUsecase {
	return ChecklistUsecase{
		executorGetter:      fakeTransactionFactory{},
		checklistRepository: repo,
	}
}

func validConfig() checklist.Config {
	return checklist.Config{
		Items: []checklist.Item{
			{Id: "has-ordinance", Type: checklist.ItemCheckbox, Label: "Ordinance on file", Required: true},
		},
	}
}

func TestPublishChecklist(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a valid draft", func(t *testing.T) {
		repo := new(mockChecklistRepository)
		draft := models.ChecklistRecord{Id: "cl-1", Status: models.ChecklistDraft, Config: validConfig()}
		published := models.ChecklistRecord{Id: "cl-1", Status: models.ChecklistPublished, Config: validConfig()}
		repo.On("GetChecklist", ctx, nil, "cl-1").Return(draft, nil).Once()
		repo.On("PublishChecklist", ctx, nil, "cl-1").Return(nil).Once()
		repo.On("GetChecklist", ctx, nil, "cl-1").Return(published, nil).Once()

		record, report, err := newChecklistUsecase(repo).PublishChecklist(ctx, "cl-1")

		assert.NoError(t, err)
		assert.Equal(t, models.ChecklistPublished, record.Status)
		assert.True(t, report.IsValid())
		repo.AssertExpectations(t)
	})

	t.Run("structural errors block publication", func(t *testing.T) {
		repo := new(mockChecklistRepository)
		draft := models.ChecklistRecord{
			Id:     "cl-2",
			Status: models.ChecklistDraft,
			Config: checklist.Config{Items: []checklist.Item{
				{Id: "unnamed", Type: checklist.ItemCheckbox, Label: ""},
			}},
		}
		repo.On("GetChecklist", ctx, nil, "cl-2").Return(draft, nil).Once()

		_, _, err := newChecklistUsecase(repo).PublishChecklist(ctx, "cl-2")

		assert.ErrorIs(t, err, models.ErrChecklistNotValid)
		assert.ErrorIs(t, err, models.UnprocessableEntityError)
		repo.AssertNotCalled(t, "PublishChecklist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("warnings block publication in strict mode only", func(t *testing.T) {
		configWithWarning := checklist.Config{
			Items: []checklist.Item{
				{
					Id:        "budget",
					Type:      checklist.ItemCurrencyInput,
					Label:     "Allocated budget",
					MinValue:  0,
					MaxValue:  10_000,
					Threshold: pure_utils.Ptr(50_000.0),
				},
			},
		}

		repo := new(mockChecklistRepository)
		strictDraft := models.ChecklistRecord{Id: "cl-3", Status: models.ChecklistDraft, Config: configWithWarning}
		strictDraft.Config.ValidationMode = checklist.ValidationStrict
		repo.On("GetChecklist", ctx, nil, "cl-3").Return(strictDraft, nil).Once()

		_, report, err := newChecklistUsecase(repo).PublishChecklist(ctx, "cl-3")

		assert.ErrorIs(t, err, models.ErrChecklistWarningsBlockPublish)
		assert.Len(t, report.Warnings, 1)

		repo = new(mockChecklistRepository)
		lenientDraft := models.ChecklistRecord{Id: "cl-4", Status: models.ChecklistDraft, Config: configWithWarning}
		repo.On("GetChecklist", ctx, nil, "cl-4").Return(lenientDraft, nil).Once()
		repo.On("PublishChecklist", ctx, nil, "cl-4").Return(nil).Once()
		repo.On("GetChecklist", ctx, nil, "cl-4").Return(lenientDraft, nil).Once()

		_, report, err = newChecklistUsecase(repo).PublishChecklist(ctx, "cl-4")

		assert.NoError(t, err)
		assert.Len(t, report.Warnings, 1)
		repo.AssertExpectations(t)
	})

	t.Run("published checklists cannot be republished", func(t *testing.T) {
		repo := new(mockChecklistRepository)
		published := models.ChecklistRecord{Id: "cl-5", Status: models.ChecklistPublished, Config: validConfig()}
		repo.On("GetChecklist", ctx, nil, "cl-5").Return(published, nil).Once()

		_, _, err := newChecklistUsecase(repo).PublishChecklist(ctx, "cl-5")

		assert.ErrorIs(t, err, models.ErrChecklistNotDraft)
	})
}

func TestUpdateChecklist(t *testing.T) {
	ctx := context.Background()

	t.Run("published checklists are immutable", func(t *testing.T) {
		repo := new(mockChecklistRepository)
		published := models.ChecklistRecord{Id: "cl-1", Status: models.ChecklistPublished, Config: validConfig()}
		repo.On("GetChecklist", ctx, nil, "cl-1").Return(published, nil).Once()

		_, err := newChecklistUsecase(repo).UpdateChecklist(ctx, models.UpdateChecklistInput{
			Id:   "cl-1",
			Name: pure_utils.Ptr("renamed"),
		})

		assert.ErrorIs(t, err, models.ErrChecklistNotDraft)
		repo.AssertNotCalled(t, "UpdateChecklist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("updates a draft", func(t *testing.T) {
		repo := new(mockChecklistRepository)
		input := models.UpdateChecklistInput{Id: "cl-2", Name: pure_utils.Ptr("renamed")}
		draft := models.ChecklistRecord{Id: "cl-2", Status: models.ChecklistDraft, Config: validConfig()}
		repo.On("GetChecklist", ctx, nil, "cl-2").Return(draft, nil).Twice()
		repo.On("UpdateChecklist", ctx, nil, input).Return(nil).Once()

		_, err := newChecklistUsecase(repo).UpdateChecklist(ctx, input)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing checklists surface as not found", func(t *testing.T) {
		repo := new(mockChecklistRepository)
		notFound := errors.Wrap(models.NotFoundError, "checklist")
		repo.On("GetChecklist", ctx, nil, "cl-3").Return(models.ChecklistRecord{}, notFound).Once()

		_, err := newChecklistUsecase(repo).UpdateChecklist(ctx, models.UpdateChecklistInput{Id: "cl-3"})

		assert.ErrorIs(t, err, models.NotFoundError)
	})
}
