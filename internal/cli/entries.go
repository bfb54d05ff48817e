package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/e11jah/bstmap"
)

type entryItem struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// decodeEntries accepts either a yaml mapping or a list of key/value items.
// A list may repeat keys; document order is kept in both forms.
func decodeEntries(data []byte) ([]bstmap.Entry[string, string], error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse entries")
	}

	switch doc.(type) {
	case nil:
		return nil, nil
	case map[interface{}]interface{}:
		return decodeMapping(data)
	case []interface{}:
		return decodeList(data)
	default:
		return nil, errors.Errorf("entries must be a mapping or a list of key/value items, got %T", doc)
	}
}

func decodeMapping(data []byte) ([]bstmap.Entry[string, string], error) {
	var mapping yaml.MapSlice
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, errors.Wrap(err, "parse entry mapping")
	}
	out := make([]bstmap.Entry[string, string], 0, len(mapping))
	for _, item := range mapping {
		out = append(out, bstmap.Entry[string, string]{
			Key:   fmt.Sprint(item.Key),
			Value: scalar(item.Value),
		})
	}
	return out, nil
}

func decodeList(data []byte) ([]bstmap.Entry[string, string], error) {
	var items []entryItem
	if err := yaml.UnmarshalStrict(data, &items); err != nil {
		return nil, errors.Wrap(err, "parse entry list")
	}
	out := make([]bstmap.Entry[string, string], 0, len(items))
	for i, item := range items {
		if item.Key == "" {
			return nil, errors.Errorf("item %d has no key", i)
		}
		out = append(out, bstmap.Entry[string, string]{Key: item.Key, Value: item.Value})
	}
	return out, nil
}

func scalar(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
