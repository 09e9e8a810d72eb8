package service

import (
	"context"
	"errors"
	"testing"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/repository"
	"n5_vocab_study/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDatasetService(t *testing.T) DatasetService {
	t.Helper()
	db := setupTestDB(t)
	return NewDatasetService(db, repository.NewGormWordRepository(), repository.NewGormSentenceRepository(), testLogger)
}

func Test_datasetService_ImportAndLoad(t *testing.T) {
	ctx := context.Background()
	svc := newTestDatasetService(t)

	first := &model.Dataset{
		Dictionary: model.Dictionary{
			"পানি": {Meaning: "水", English: "water", Category: "Noun", Lesson: 1},
			"বই":   {Meaning: "本", Lesson: 1},
		},
		ExampleSentences: []model.ExampleSentence{
			{Japanese: "水を飲みます。", Bangla: "আমি পানি পান করি।"},
			{Japanese: "  ", Bangla: "空の例文は捨てる"},
		},
	}
	res, err := svc.Import(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, &model.ImportResult{Words: 2, Sentences: 1}, res)

	ds, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"পানি", "বই"}, ds.Dictionary.Terms())
	assert.Equal(t, model.DefaultCategory, ds.Dictionary["বই"].Category)
	require.Len(t, ds.ExampleSentences, 1)
	assert.Equal(t, "水を飲みます。", ds.ExampleSentences[0].Japanese)

	// 2回目: 単語は見出し語で上書き、例文は置き換え
	second := &model.Dataset{
		Dictionary: model.Dictionary{
			"পানি": {Meaning: "お水", English: "water", Category: "Noun", Lesson: 2},
		},
		ExampleSentences: []model.ExampleSentence{
			{Japanese: "お水をください。", Bangla: "পানি দিন।"},
			{Japanese: "本を読みます。", Bangla: "বই পড়ি।"},
		},
	}
	res, err = svc.Import(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Words)

	ds, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"পানি", "বই"}, ds.Dictionary.Terms())
	assert.Equal(t, model.DictionaryEntry{Meaning: "お水", English: "water", Category: "Noun", Lesson: 2}, ds.Dictionary["পানি"])
	require.Len(t, ds.ExampleSentences, 2)
	assert.Equal(t, "お水をください。", ds.ExampleSentences[0].Japanese)
}

func Test_datasetService_Import_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestDatasetService(t)

	tests := []struct {
		name string
		ds   *model.Dataset
	}{
		{name: "異常系: nil", ds: nil},
		{name: "異常系: 辞書が空", ds: &model.Dataset{}},
		{name: "異常系: 訳語が空", ds: &model.Dataset{Dictionary: model.Dictionary{"পানি": {Meaning: " "}}}},
		{name: "異常系: 見出し語が空", ds: &model.Dataset{Dictionary: model.Dictionary{"": {Meaning: "水"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Import(ctx, tt.ds)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func Test_datasetService_Import_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	sentenceRepo := mocks.NewSentenceRepository(t)
	sentenceRepo.On("ReplaceAll", ctx, mock.AnythingOfType("*gorm.DB"), mock.Anything).
		Return(errors.New("disk full")).Once()
	svc := NewDatasetService(db, repository.NewGormWordRepository(), sentenceRepo, testLogger)

	_, err := svc.Import(ctx, &model.Dataset{Dictionary: model.Dictionary{"পানি": {Meaning: "水"}}})
	assert.ErrorIs(t, err, model.ErrInternalServer)

	var count int64
	require.NoError(t, db.Model(&model.Word{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func Test_datasetService_Load_StoreFailure(t *testing.T) {
	ctx := context.Background()
	wordRepo := mocks.NewWordRepository(t)
	sentenceRepo := mocks.NewSentenceRepository(t)
	wordRepo.On("FindAll", ctx, mock.Anything).Return([]*model.Word{}, nil).Once()
	sentenceRepo.On("FindAll", ctx, mock.Anything).Return(nil, errors.New("timeout")).Once()
	svc := NewDatasetService(nil, wordRepo, sentenceRepo, testLogger)

	ds, err := svc.Load(ctx)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, model.ErrInternalServer)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, MsgFetchFailed, appErr.Message)
}
