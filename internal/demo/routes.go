package demo

import "github.com/wayfare-dev/wayfare/pkg/route"

// BuildTable declares the demo route set: an index page, a user list
// with nested detail, docs with an optional version parameter, and a
// settings page with a named sidebar slot.
func BuildTable() (*route.Table, error) {
	table := route.NewTable()

	routes := []*route.Route{
		{Path: "", Component: "home"},
		{
			Path:      "users",
			Component: "user-list",
			Children: []*route.Route{
				{Path: ":id", Component: "user-detail"},
			},
		},
		{Path: "docs/:version?", Component: "docs"},
		{
			Path:      "settings",
			Component: "settings",
			Slots:     map[string]string{"sidebar": "settings-nav"},
		},
	}

	for _, r := range routes {
		if err := table.Add(r); err != nil {
			return nil, err
		}
	}
	return table, nil
}
