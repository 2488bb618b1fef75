// internal/search/query.go
package search

// Field boosts for free-text career search.
var searchFields = []string{
	"name^3",
	"required_skills^2",
	"related_interests^2",
	"personality_fit",
	"education_requirements",
	"growth",
}

func buildCareerQuery(text string, size int) map[string]interface{} {
	var query map[string]interface{}
	if text == "" {
		query = map[string]interface{}{"match_all": map[string]interface{}{}}
	} else {
		query = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     text,
				"fields":    searchFields,
				"type":      "best_fields",
				"fuzziness": "AUTO",
			},
		}
	}

	return map[string]interface{}{
		"size":    size,
		"query":   query,
		"_source": []string{"name"},
	}
}
