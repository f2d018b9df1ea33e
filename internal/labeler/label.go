package labeler

import (
	"encoding/json"
	"fmt"
)

// Label はAPIレスポンス中のラベル。文字列か name を持つオブジェクトのどちらか
type Label struct {
	name string
}

// NewLabel は名前からLabelを作成する
func NewLabel(name string) Label {
	return Label{name: name}
}

// Name はラベル名を返す
func (l Label) Name() string {
	return l.name
}

// UnmarshalJSON は "bug" と {"name": "bug"} の両方を受け付ける
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("label must be a string or an object with a name: %w", err)
	}
	l.name = obj.Name
	return nil
}

// MarshalJSON はラベル名を文字列として出力する
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.name)
}

// NormalizeLabels はラベルを名前のスライスに変換する
func NormalizeLabels(labels []Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.Name())
	}
	return names
}

// ApplyLabels は既存のラベルに追加ラベルを重複なく末尾に加え、その後削除ラベルを取り除く
// 追加と削除の両方に含まれるラベルは結果に残らない
func ApplyLabels(existing, add, remove []string) []string {
	result := make([]string, 0, len(existing)+len(add))
	result = append(result, existing...)

	for _, label := range add {
		if !contains(result, label) {
			result = append(result, label)
		}
	}

	filtered := result[:0]
	for _, label := range result {
		if !contains(remove, label) {
			filtered = append(filtered, label)
		}
	}
	return filtered
}

func contains(labels []string, target string) bool {
	for _, label := range labels {
		if label == target {
			return true
		}
	}
	return false
}
