// internal/model/sentence.go
package model

// ExampleSentence は日本語の例文とベンガル語訳
type ExampleSentence struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Japanese string `gorm:"not null" json:"jp"`
	Bangla   string `gorm:"not null" json:"bn"`
}

func (ExampleSentence) TableName() string {
	return "example_sentences"
}

// Dataset は学習ページが使う全データ (辞書全体 + 例文コーパス)
type Dataset struct {
	Dictionary       Dictionary        `json:"dictionary"`
	ExampleSentences []ExampleSentence `json:"exampleSentences"`
}

// ImportResult は seed の結果
type ImportResult struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
}
