package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pathwise/pathwise/ent"
	"github.com/pathwise/pathwise/ent/curriculumdoc"
	"github.com/pathwise/pathwise/internal/curriculum"
)

// curriculumRepo implements CurriculumRepo using the ent client.
type curriculumRepo struct {
	client *ent.Client
}

func (r *curriculumRepo) Save(ctx context.Context, c *curriculum.Curriculum) error {
	dataMap, err := docToMap(c)
	if err != nil {
		return fmt.Errorf("marshal curriculum: %w", err)
	}

	existing, err := r.client.CurriculumDoc.Query().
		Where(curriculumdoc.LearnerID(c.LearnerID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetCurriculumID(c.ID).
			SetVersion(c.Version).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update curriculum doc: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.CurriculumDoc.Create().
			SetLearnerID(c.LearnerID).
			SetCurriculumID(c.ID).
			SetVersion(c.Version).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create curriculum doc: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query curriculum doc: %w", err)
	}
}

func (r *curriculumRepo) ByLearner(ctx context.Context, learnerID string) (*curriculum.Curriculum, error) {
	doc, err := r.client.CurriculumDoc.Query().
		Where(curriculumdoc.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query curriculum doc: %w", err)
	}
	return docFromMap(doc.Data)
}

func (r *curriculumRepo) Delete(ctx context.Context, learnerID string) error {
	_, err := r.client.CurriculumDoc.Delete().
		Where(curriculumdoc.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete curriculum doc: %w", err)
	}
	return nil
}

// docToMap converts a curriculum to map[string]any for ent JSON storage.
func docToMap(c *curriculum.Curriculum) (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// docFromMap converts stored JSON back to a curriculum.
func docFromMap(m map[string]any) (*curriculum.Curriculum, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored doc: %w", err)
	}
	var c curriculum.Curriculum
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal curriculum: %w", err)
	}
	return &c, nil
}
