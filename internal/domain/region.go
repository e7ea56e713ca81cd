package domain

import "strings"

type Region struct {
	Flag     string `json:"flag"`
	DialCode string `json:"dialCode"`
	Name     string `json:"name"`
}

var regions = []Region{
	{Flag: "🇺🇸", DialCode: "+1", Name: "USA"},
	{Flag: "🇬🇧", DialCode: "+44", Name: "UK"},
	{Flag: "🇨🇦", DialCode: "+1", Name: "Canada"},
	{Flag: "🇦🇺", DialCode: "+61", Name: "Australia"},
	{Flag: "🇩🇪", DialCode: "+49", Name: "Germany"},
	{Flag: "🇫🇷", DialCode: "+33", Name: "France"},
	{Flag: "🇮🇹", DialCode: "+39", Name: "Italy"},
	{Flag: "🇪🇸", DialCode: "+34", Name: "Spain"},
	{Flag: "🇳🇱", DialCode: "+31", Name: "Netherlands"},
	{Flag: "🇸🇪", DialCode: "+46", Name: "Sweden"},
	{Flag: "🇨🇭", DialCode: "+41", Name: "Switzerland"},
	{Flag: "🇧🇪", DialCode: "+32", Name: "Belgium"},
}

// Regions returns the fixed catalog in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

func FindRegion(name string) (Region, error) {
	trimmed := strings.TrimSpace(name)
	for _, region := range regions {
		if strings.EqualFold(region.Name, trimmed) {
			return region, nil
		}
	}

	return Region{}, ErrRegionNotFound
}
