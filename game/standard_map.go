package game

// StandardMapName is the registry key of the classic TEG board.
const StandardMapName = "standard"

// CreateStandardMap builds the classic 50 country, 6 continent board.
func CreateStandardMap() *Map {
	m := NewMap(StandardMapName)

	for _, c := range standardContinents {
		id := m.AddContinent(c.name, c.bonus)
		for _, country := range c.countries {
			m.AddTerritory(country, id)
		}
	}

	for country, neighbors := range standardBorders {
		id1 := m.byName[country]
		for _, neighbor := range neighbors {
			m.AddBorder(id1, m.byName[neighbor])
		}
	}

	return m
}

// GLOBAL DATA. IDs follow declaration order, so the order of continents and
// countries below is part of the snapshot format and must not change.

var standardContinents = []struct {
	name      string
	bonus     int
	countries []string
}{
	{"South America", 3, []string{"Argentina", "Brazil", "Chile", "Colombia", "Peru", "Uruguay"}},
	{"North America", 5, []string{"Alaska", "California", "Canada", "Greenland", "Labrador", "Mexico", "New York", "Oregon", "Newfoundland", "Yukon"}},
	{"Europe", 5, []string{"Spain", "France", "Germany", "Italy", "Great Britain", "Iceland", "Poland", "Russia", "Sweden"}},
	{"Africa", 3, []string{"Egypt", "Ethiopia", "Madagascar", "Sahara", "South Africa", "Zaire"}},
	{"Asia", 7, []string{"Arabia", "Aral", "China", "Gobi", "India", "Iran", "Israel", "Japan", "Kamchatka", "Malaysia", "Mongolia", "Siberia", "Taymyr", "Tartary", "Turkey"}},
	{"Oceania", 2, []string{"Australia", "Borneo", "Java", "Sumatra"}},
}

// Borders are listed once per pair or both ways; AddBorder deduplicates.
var standardBorders = map[string][]string{
	"Argentina":     {"Chile", "Uruguay", "Brazil", "Peru"},
	"Brazil":        {"Uruguay", "Peru", "Colombia", "Sahara"},
	"Chile":         {"Peru", "Australia"},
	"Colombia":      {"Peru", "Mexico"},
	"Mexico":        {"California"},
	"California":    {"Oregon", "New York"},
	"Oregon":        {"New York", "Alaska", "Yukon", "Canada"},
	"Alaska":        {"Yukon", "Kamchatka"},
	"Yukon":         {"Canada"},
	"Canada":        {"New York", "Newfoundland"},
	"New York":      {"Newfoundland", "Greenland"},
	"Newfoundland":  {"Labrador"},
	"Labrador":      {"Greenland"},
	"Greenland":     {"Iceland"},
	"Iceland":       {"Great Britain", "Sweden"},
	"Great Britain": {"Spain", "Germany"},
	"Spain":         {"France", "Sahara"},
	"France":        {"Germany", "Italy"},
	"Italy":         {"Germany"},
	"Germany":       {"Poland"},
	"Poland":        {"Russia", "Turkey", "Egypt"},
	"Sweden":        {"Russia"},
	"Russia":        {"Turkey", "Iran", "Aral"},
	"Sahara":        {"Egypt", "Ethiopia", "Zaire"},
	"Egypt":         {"Ethiopia", "Madagascar", "Turkey", "Israel"},
	"Ethiopia":      {"Zaire", "South Africa"},
	"Zaire":         {"South Africa", "Madagascar"},
	"Turkey":        {"Israel", "Arabia", "Iran"},
	"Israel":        {"Arabia"},
	"Iran":          {"Aral", "Mongolia", "Gobi", "China", "India"},
	"Aral":          {"Mongolia", "Siberia", "Tartary"},
	"Tartary":       {"Siberia", "Taymyr"},
	"Taymyr":        {"Siberia"},
	"Siberia":       {"Mongolia", "China", "Kamchatka"},
	"Mongolia":      {"Gobi", "China"},
	"Gobi":          {"China"},
	"China":         {"Kamchatka", "Japan", "India", "Malaysia"},
	"Kamchatka":     {"Japan"},
	"India":         {"Malaysia", "Sumatra"},
	"Malaysia":      {"Borneo"},
	"Sumatra":       {"Australia"},
	"Borneo":        {"Australia"},
	"Java":          {"Australia"},
}
