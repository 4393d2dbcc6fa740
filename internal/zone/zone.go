package zone

import "strings"

// Zone is one of the six fixed Semarang groupings used as a categorical
// feature. ZoneOther covers locations outside the mapped city districts.
type Zone string

const (
	ZoneWest    Zone = "Semarang Barat"
	ZoneEast    Zone = "Semarang Timur"
	ZoneNorth   Zone = "Semarang Utara"
	ZoneSouth   Zone = "Semarang Selatan"
	ZoneCentral Zone = "Semarang Tengah"
	ZoneOther   Zone = "Semarang Lainnya"
)

// All lists the zones in registration order. The order is load-bearing:
// it breaks substring-match ties and fixes the one-hot encoding order.
var All = []Zone{ZoneWest, ZoneEast, ZoneNorth, ZoneSouth, ZoneCentral, ZoneOther}

var locations = map[Zone][]string{
	ZoneWest: {
		"Semarang Barat", "Kalibanteng", "Kalibanteng Kulon", "Kalibanteng Kidul",
		"Krapyak", "Manyaran", "Ngaliyan", "Tugu", "Tugurejo", "Jerakah",
		"Puspogiwang", "Gajah Mungkur", "Sampangan", "Puspowarno",
		"Puri Anjasmoro", "Anjasmoro", "Karangayu", "Pusponjolo", "Graha Padma",
		"Kembang Arum", "Tawangmas", "Pamularsih", "Mijen", "Simongan",
		"Bongsari", "BSB City",
	},
	ZoneEast: {
		"Semarang Timur", "Pedurungan", "Tlogosari", "Genuk", "Gayamsari",
		"Kedungmundu", "Ketileng", "Bangetayu", "Bangetayu Wetan", "Muktiharjo",
		"Gemah", "Plamongan", "Meteseh", "Mlatiharjo", "Banyumanik", "Tembalang",
		"Bukit Sari", "Sendangmulyo", "Sambiroto", "Srondol", "Pudak Payung",
		"Ngesrep", "Jangli", "Penggaron", "Citragrand", "Rejosari", "Kalicari",
		"Majapahit", "Pedalangan", "Kaligawe",
	},
	ZoneNorth: {
		"Semarang Utara", "Tanah Mas", "Panggung", "Kuningan", "Plombokan",
		"Tanjung Mas", "Bandarharjo", "Kampung Kali",
	},
	ZoneSouth: {
		"Semarang Selatan", "Wonodri", "Pleburan", "Candisari", "Jatingaleh",
		"Candi Golf", "Jomblang", "Lamper", "Karang Anyar", "Karang Rejo",
		"Karang Tempel", "Karang Kidul", "Siranda", "Sompok", "Mugosari",
		"Tlaga Bodas", "Gajahmada", "Sultan Agung", "Peterongan",
		"Dr Cipto Mangunkusomo", "Atmodirono", "Bulustalan", "Pandansari",
		"Gajahmungkur", "Gunung Pati", "Barusari", "Pati Wetan",
	},
	ZoneCentral: {
		"Semarang Tengah", "Simpang Lima", "Pemuda", "Sekayu", "Gabahan",
		"Kranggan", "Jagalan", "Miroto", "Pindrikan", "Pekunden", "Purwosari",
		"Pendirikan", "Brumbungan", "Mataram", "Kartini", "Bugangan", "Citarum",
		"Indraprasta", "Sidodadi Timur", "Kawi", "Halmahera", "Kaliwungu",
		"Krakatau", "Nias", "Semeru", "Sri Rejeki", "Kenconowungu", "Dempel",
		"Papandayan", "Cabean", "Gedung Batu", "Greenwood", "Karang Turi",
		"Kauman", "Purwodinatan", "Sarirejo",
	},
	ZoneOther: {
		"Ungaran", "Ungaran Barat", "Ungaran Timur", "Bawen", "Bergas", "Boja",
		"Bandungan", "Mranggen", "Bringin", "Pringapus", "Sumowono", "Suruh",
		"Tengaran", "Tuntang", "Getasan", "Pabelan", "Banjardowo",
		"Kedung Pane", "Tengger", "Mangunsari",
	},
}

// Normalize maps a free-text location to its zone. The match is the longest
// known location that appears as a substring of the cleaned input (or the
// input as a substring of a known location, for abbreviated queries). The
// second return reports whether any known location matched; unmatched input
// falls back to ZoneOther.
func Normalize(location string) (Zone, bool) {
	cleaned := strings.TrimSpace(location)
	if idx := strings.Index(cleaned, ", Semarang"); idx >= 0 {
		cleaned = strings.TrimSpace(cleaned[:idx])
	}
	if cleaned == "" {
		return ZoneOther, false
	}
	folded := strings.ToLower(cleaned)

	bestZone := ZoneOther
	bestLen := 0
	matched := false
	for _, z := range All {
		for _, name := range locations[z] {
			known := strings.ToLower(name)
			if strings.Contains(folded, known) || strings.Contains(known, folded) {
				if len(known) > bestLen {
					bestZone = z
					bestLen = len(known)
					matched = true
				}
			}
		}
	}
	if !matched {
		return ZoneOther, false
	}
	return bestZone, true
}

// Locations returns the known location names per zone, in registration order.
func Locations() map[Zone][]string {
	out := make(map[Zone][]string, len(locations))
	for z, names := range locations {
		out[z] = append([]string(nil), names...)
	}
	return out
}
