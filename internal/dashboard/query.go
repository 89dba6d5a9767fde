package dashboard

import "net/url"

// FilteredMarker is sent by the filter form. When present, a filter missing
// from the query means "nothing selected" rather than "use the default".
const FilteredMarker = "filtered"

// SelectionFromQuery reads ?year=...&municipality=... query values
func SelectionFromQuery(values url.Values) Selection {
	explicit := values.Has(FilteredMarker)
	return Selection{
		Years:          queryList(values, FilterYear, explicit),
		Municipalities: queryList(values, FilterMunicipality, explicit),
	}
}

func queryList(values url.Values, key string, explicit bool) []string {
	list, ok := values[key]
	if !ok {
		if explicit {
			return []string{}
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
