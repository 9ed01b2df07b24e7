package store

import "context"

// completedValue marks a completed section in the sections blob.
const completedValue = "true"

type sectionRepo struct {
	kv KV
}

func (r *sectionRepo) load(ctx context.Context) (map[string]string, error) {
	m := map[string]string{}
	if _, err := loadObject(ctx, r.kv, KeySections, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

func (r *sectionRepo) IsCompleted(ctx context.Context, section string) (bool, error) {
	m, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	return m[section] == completedValue, nil
}

func (r *sectionRepo) Complete(ctx context.Context, section string) error {
	m, err := r.load(ctx)
	if err != nil {
		return err
	}
	m[section] = completedValue
	return saveObject(ctx, r.kv, KeySections, m)
}

func (r *sectionRepo) Completed(ctx context.Context) (map[string]bool, error) {
	m, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(m))
	for k, v := range m {
		if v == completedValue {
			done[k] = true
		}
	}
	return done, nil
}

func (r *sectionRepo) Reset(ctx context.Context) error {
	return saveObject(ctx, r.kv, KeySections, map[string]string{})
}
