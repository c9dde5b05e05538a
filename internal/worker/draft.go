package worker

import (
	"encoding/json"
	"fmt"

	"resumecloner/internal/database"
	"resumecloner/internal/resume"
)

// documentFromDraft 把草稿行中的 JSONB 内容还原为文档。
func documentFromDraft(draft *database.Draft) (resume.Document, error) {
	if len(draft.Content) == 0 {
		return resume.Document{}, fmt.Errorf("draft %d has no content", draft.ID)
	}
	var doc resume.Document
	if err := json.Unmarshal(draft.Content, &doc); err != nil {
		return resume.Document{}, fmt.Errorf("unmarshal draft %d content: %w", draft.ID, err)
	}
	return doc, nil
}
