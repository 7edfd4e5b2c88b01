package cmd

import (
	"context"
	"fmt"

	"github.com/lernzeit/lernzeit/internal/store"
)

type seedVariant struct {
	value   string
	cluster string
}

type seedFamily struct {
	family   store.ScenarioFamilyRecord
	variants map[string][]seedVariant
}

// seedScenarios inserts the built-in German scenario families and their
// context variants. Returns the number of families inserted.
func seedScenarios(ctx context.Context, repo store.ContextRepo) (int, error) {
	for _, sf := range seedFamilies {
		familyID, err := repo.InsertFamily(ctx, sf.family)
		if err != nil {
			return 0, fmt.Errorf("insert family %q: %w", sf.family.Name, err)
		}
		for dim, variants := range sf.variants {
			for _, v := range variants {
				_, err := repo.InsertVariant(ctx, store.ContextVariantRecord{
					ScenarioFamilyID: familyID,
					DimensionType:    dim,
					Value:            v.value,
					SemanticCluster:  v.cluster,
					QualityScore:     1,
				})
				if err != nil {
					return 0, fmt.Errorf("insert variant %q for %q: %w", v.value, sf.family.Name, err)
				}
			}
		}
	}
	return len(seedFamilies), nil
}

var characterVariants = []seedVariant{
	{"Lena", "kind"},
	{"Ben", "kind"},
	{"Aylin", "kind"},
	{"Jonas", "kind"},
	{"Frau Weber", "erwachsener"},
	{"Herr Yilmaz", "erwachsener"},
}

var seedFamilies = []seedFamily{
	{
		family: store.ScenarioFamilyRecord{
			Name:         "Einkaufen",
			Category:     "Zahlen & Operationen",
			GradeMin:     1,
			GradeMax:     6,
			BaseTemplate: "{character} kauft im {location} {item}.",
			ContextSlots: map[string]store.SlotSpec{
				"location":  {Required: true, Hint: "Ort des Einkaufs"},
				"character": {Required: true, Hint: "Handelnde Person"},
				"item":      {Required: false, Hint: "Gekaufte Ware"},
			},
			DifficultyLevel: 1,
		},
		variants: map[string][]seedVariant{
			"location": {
				{"Supermarkt", "laden"},
				{"Hofladen", "laden"},
				{"Kiosk", "laden"},
				{"Wochenmarkt", "markt"},
				{"Flohmarkt", "markt"},
			},
			"character": characterVariants,
			"item": {
				{"Äpfel", "obst"},
				{"Bananen", "obst"},
				{"Brötchen", "backware"},
				{"Brezeln", "backware"},
				{"Murmeln", "spielzeug"},
				{"Sticker", "spielzeug"},
			},
		},
	},
	{
		family: store.ScenarioFamilyRecord{
			Name:         "Ausflug",
			Category:     "Größen & Messen",
			GradeMin:     2,
			GradeMax:     8,
			BaseTemplate: "Beim Ausflug zum {location} misst {character} {item}.",
			ContextSlots: map[string]store.SlotSpec{
				"location":  {Required: true, Hint: "Ausflugsziel"},
				"character": {Required: true, Hint: "Handelnde Person"},
				"item":      {Required: false, Hint: "Gemessene Größe"},
			},
			DifficultyLevel: 2,
		},
		variants: map[string][]seedVariant{
			"location": {
				{"Zoo", "freizeit"},
				{"Schwimmbad", "freizeit"},
				{"Museum", "kultur"},
				{"Sportplatz", "sport"},
				{"Waldlehrpfad", "natur"},
			},
			"character": characterVariants,
			"item": {
				{"die gelaufene Strecke", "laenge"},
				{"die Höhe des Geheges", "laenge"},
				{"die Dauer der Führung", "zeit"},
				{"die Wartezeit an der Kasse", "zeit"},
				{"das Gewicht des Rucksacks", "gewicht"},
			},
		},
	},
	{
		family: store.ScenarioFamilyRecord{
			Name:         "Bauprojekt",
			Category:     "Raum & Form",
			GradeMin:     3,
			GradeMax:     10,
			BaseTemplate: "In der {location} plant {character} {item}.",
			ContextSlots: map[string]store.SlotSpec{
				"location":  {Required: true, Hint: "Ort des Projekts"},
				"character": {Required: true, Hint: "Handelnde Person"},
				"item":      {Required: false, Hint: "Geplantes Objekt"},
			},
			DifficultyLevel: 2,
		},
		variants: map[string][]seedVariant{
			"location": {
				{"Werkstatt", "innenraum"},
				{"Schule", "innenraum"},
				{"Garage", "innenraum"},
				{"Gartenhütte", "aussen"},
			},
			"character": characterVariants,
			"item": {
				{"ein rechteckiges Regal", "moebel"},
				{"eine würfelförmige Kiste", "moebel"},
				{"ein Vogelhaus mit Satteldach", "deko"},
				{"einen quadratischen Bilderrahmen", "deko"},
			},
		},
	},
	{
		family: store.ScenarioFamilyRecord{
			Name:         "Schulfest",
			Category:     "Daten & Zufall",
			GradeMin:     3,
			GradeMax:     10,
			BaseTemplate: "Beim Schulfest zählt {character} am Stand {location} {item}.",
			ContextSlots: map[string]store.SlotSpec{
				"location":  {Required: true, Hint: "Stand auf dem Fest"},
				"character": {Required: true, Hint: "Handelnde Person"},
				"item":      {Required: false, Hint: "Gezählte Daten"},
			},
			DifficultyLevel: 2,
		},
		variants: map[string][]seedVariant{
			"location": {
				{"Losbude", "spiel"},
				{"Torwandschießen", "spiel"},
				{"Kuchenstand", "verkauf"},
				{"Getränkestand", "verkauf"},
			},
			"character": characterVariants,
			"item": {
				{"die verkauften Lose", "anzahl"},
				{"die erzielten Treffer", "anzahl"},
				{"die abgegebenen Stimmen", "anzahl"},
				{"die Einnahmen pro Stunde", "wert"},
			},
		},
	},
	{
		family: store.ScenarioFamilyRecord{
			Name:         "Taschengeld",
			Category:     "Gleichungen & Funktionen",
			GradeMin:     7,
			GradeMax:     10,
			BaseTemplate: "{character} spart auf {item} und vergleicht Angebote im {location}.",
			ContextSlots: map[string]store.SlotSpec{
				"location":  {Required: true, Hint: "Ort des Vergleichs"},
				"character": {Required: true, Hint: "Handelnde Person"},
				"item":      {Required: false, Hint: "Sparziel"},
			},
			DifficultyLevel: 3,
		},
		variants: map[string][]seedVariant{
			"location": {
				{"Elektronikmarkt", "laden"},
				{"Onlineshop", "online"},
				{"Fahrradladen", "laden"},
			},
			"character": characterVariants,
			"item": {
				{"ein Fahrrad", "fahrzeug"},
				{"eine Spielkonsole", "technik"},
				{"ein Tablet", "technik"},
				{"ein Konzertticket", "erlebnis"},
			},
		},
	},
}
