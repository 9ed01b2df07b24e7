package store

import "context"

type answerRepo struct {
	kv KV
}

func (r *answerRepo) Load(ctx context.Context) (ErrorMap, error) {
	m := ErrorMap{}
	if _, err := loadObject(ctx, r.kv, KeyAnswers, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = ErrorMap{}
	}
	return m, nil
}

func (r *answerRepo) Save(ctx context.Context, m ErrorMap) error {
	if m == nil {
		m = ErrorMap{}
	}
	return saveObject(ctx, r.kv, KeyAnswers, m)
}

func (r *answerRepo) Reset(ctx context.Context) error {
	return saveObject(ctx, r.kv, KeyAnswers, ErrorMap{})
}
