// README: Static catalog for the service: priority towns, major destinations, quick picks and fleet.
package catalog

import "taxibook/internal/types"

// Area is a named place with a reference coordinate.
type Area struct {
	Name     string      `json:"name"`
	Position types.Point `json:"position"`
}

// PopularDestination is a quick-pick shortcut fed to address search.
type PopularDestination struct {
	Name       string `json:"name"`
	SearchTerm string `json:"search_term"`
}

type Vehicle struct {
	Model       string   `json:"model"`
	Seats       int      `json:"seats"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PriorityTowns are served first; coordinates are town centres.
var PriorityTowns = []Area{
	{"Marne-la-Vallée", types.Point{Lat: 48.8584, Lng: 2.6331}},
	{"Torcy", types.Point{Lat: 48.8502, Lng: 2.6508}},
	{"Lognes", types.Point{Lat: 48.8363, Lng: 2.6283}},
	{"Bussy-Saint-Georges", types.Point{Lat: 48.8407, Lng: 2.7036}},
	{"Bussy-Saint-Martin", types.Point{Lat: 48.8478, Lng: 2.6864}},
	{"Chanteloup-en-Brie", types.Point{Lat: 48.8553, Lng: 2.7372}},
	{"Collégien", types.Point{Lat: 48.8378, Lng: 2.6747}},
	{"Conches-sur-Gondoire", types.Point{Lat: 48.8569, Lng: 2.7181}},
	{"Ferrières-en-Brie", types.Point{Lat: 48.8197, Lng: 2.7094}},
	{"Gouvernes", types.Point{Lat: 48.8606, Lng: 2.6911}},
	{"Guermantes", types.Point{Lat: 48.8531, Lng: 2.7069}},
	{"Jossigny", types.Point{Lat: 48.8372, Lng: 2.7597}},
	{"Lagny-sur-Marne", types.Point{Lat: 48.8725, Lng: 2.7097}},
	{"Montévrain", types.Point{Lat: 48.8739, Lng: 2.7456}},
	{"Saint-Thibault-des-Vignes", types.Point{Lat: 48.8711, Lng: 2.6858}},
	{"Bailly-Romainvilliers", types.Point{Lat: 48.8475, Lng: 2.8186}},
	{"Chessy", types.Point{Lat: 48.8803, Lng: 2.7653}},
	{"Coupvray", types.Point{Lat: 48.8939, Lng: 2.7961}},
	{"Magny-le-Hongre", types.Point{Lat: 48.8633, Lng: 2.8139}},
	{"Serris", types.Point{Lat: 48.8453, Lng: 2.7856}},
	{"Villeneuve-le-Comte", types.Point{Lat: 48.8144, Lng: 2.8297}},
}

var MajorDestinations = []Area{
	{"Paris", types.Point{Lat: 48.8566, Lng: 2.3522}},
	{"Disneyland Paris", types.Point{Lat: 48.8674, Lng: 2.7836}},
	{"Aéroport CDG", types.Point{Lat: 49.0097, Lng: 2.5479}},
	{"Aéroport Orly", types.Point{Lat: 48.7262, Lng: 2.3652}},
}

var PopularDestinations = []PopularDestination{
	{Name: "Disneyland Paris", SearchTerm: "Disneyland Paris, Chessy"},
	{Name: "Val d'Europe", SearchTerm: "Val d'Europe, Serris"},
	{Name: "Gare de Marne-la-Vallée Chessy", SearchTerm: "Gare de Marne-la-Vallée Chessy"},
	{Name: "Aéroport Charles de Gaulle", SearchTerm: "Aéroport Charles de Gaulle, Roissy-en-France"},
	{Name: "Aéroport d'Orly", SearchTerm: "Aéroport d'Orly, Orly"},
	{Name: "Gare de l'Est", SearchTerm: "Gare de l'Est, Paris"},
	{Name: "Châtelet-Les Halles", SearchTerm: "Châtelet-Les Halles, Paris"},
	{Name: "Centre commercial Bay 2", SearchTerm: "Centre commercial Bay 2, Torcy"},
	{Name: "Bussy-Saint-Georges centre", SearchTerm: "Bussy-Saint-Georges centre"},
	{Name: "Lognes centre", SearchTerm: "Lognes centre"},
}

// Fleet is ordered by seat count.
var Fleet = []Vehicle{
	{
		Model:       "Peugeot 508 Hybride",
		Seats:       4,
		Description: "Berline hybride confortable",
		Features:    []string{"Climatisation", "Wi-Fi", "Chargeurs USB"},
	},
	{
		Model:       "Mercedes Classe V",
		Seats:       7,
		Description: "Van spacieux pour groupes et familles",
		Features:    []string{"Climatisation", "Grand coffre", "Sièges enfants sur demande"},
	},
}

// VehicleFor returns the smallest vehicle seating passengers, or the largest one.
func VehicleFor(passengers int) Vehicle {
	for _, v := range Fleet {
		if passengers <= v.Seats {
			return v
		}
	}
	return Fleet[len(Fleet)-1]
}
