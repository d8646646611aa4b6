// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import "github.com/tomtom215/parkstats/internal/models"

// VenueEntry is one row of the coordinate table.
type VenueEntry struct {
	Name       string            `koanf:"name" json:"name"`
	Coordinate models.Coordinate `koanf:"coordinate" json:"coordinate"`
}

// KnownVenues is the built-in coordinate table. Order matters: fuzzy lookups
// return the first entry whose normalized name matches.
// Coordinates are approximate start line locations.
var KnownVenues = []VenueEntry{
	// London
	{"Bushy parkrun", models.Coordinate{Lat: 51.4106, Lon: -0.3421}},
	{"Richmond Park parkrun", models.Coordinate{Lat: 51.4429, Lon: -0.2747}},
	{"Wimbledon Common parkrun", models.Coordinate{Lat: 51.4339, Lon: -0.2325}},
	{"Hackney Marshes parkrun", models.Coordinate{Lat: 51.5532, Lon: -0.0313}},
	{"Finsbury Park parkrun", models.Coordinate{Lat: 51.5700, Lon: -0.1030}},

	// Hampshire
	{"Whiteley parkrun", models.Coordinate{Lat: 50.8849, Lon: -1.2477}},
	{"Southampton parkrun", models.Coordinate{Lat: 50.9130, Lon: -1.4075}},
	{"Netley Abbey parkrun", models.Coordinate{Lat: 50.8700, Lon: -1.3560}},
	{"Portsmouth Lakeside parkrun", models.Coordinate{Lat: 50.8380, Lon: -1.0430}},
	{"Havant parkrun", models.Coordinate{Lat: 50.8600, Lon: -0.9800}},
	{"Winchester parkrun", models.Coordinate{Lat: 51.0560, Lon: -1.3280}},
	{"Basingstoke parkrun", models.Coordinate{Lat: 51.2620, Lon: -1.0870}},

	// Surrey, Sussex, Kent
	{"Guildford parkrun", models.Coordinate{Lat: 51.2430, Lon: -0.5620}},
	{"Reigate Priory parkrun", models.Coordinate{Lat: 51.2340, Lon: -0.2120}},
	{"Chichester parkrun", models.Coordinate{Lat: 50.8460, Lon: -0.7720}},
	{"Worthing parkrun", models.Coordinate{Lat: 50.8100, Lon: -0.3900}},
	{"Brighton & Hove parkrun", models.Coordinate{Lat: 50.8400, Lon: -0.1520}},
	{"Eastbourne parkrun", models.Coordinate{Lat: 50.7750, Lon: 0.2750}},
	{"Canterbury parkrun", models.Coordinate{Lat: 51.2800, Lon: 1.0800}},

	// South Coast and South West
	{"Bournemouth parkrun", models.Coordinate{Lat: 50.7200, Lon: -1.8400}},
	{"Poole parkrun", models.Coordinate{Lat: 50.7180, Lon: -1.9700}},
	{"Ashton Court parkrun", models.Coordinate{Lat: 51.4440, Lon: -2.6410}},
	{"Exeter Riverside parkrun", models.Coordinate{Lat: 50.7150, Lon: -3.5200}},
	{"Plymvalley parkrun", models.Coordinate{Lat: 50.3900, Lon: -4.0800}},
	{"Bath Skyline parkrun", models.Coordinate{Lat: 51.3720, Lon: -2.3270}},

	// Wales
	{"Cardiff parkrun", models.Coordinate{Lat: 51.4948, Lon: -3.1933}},
	{"Swansea Bay parkrun", models.Coordinate{Lat: 51.6050, Lon: -3.9800}},

	// Lake District and the North
	{"Keswick parkrun", models.Coordinate{Lat: 54.6013, Lon: -3.1347}},
	{"Fell Foot parkrun", models.Coordinate{Lat: 54.2730, Lon: -2.9520}},
	{"Penrith parkrun", models.Coordinate{Lat: 54.6640, Lon: -2.7560}},
	{"Newcastle parkrun", models.Coordinate{Lat: 54.9800, Lon: -1.6220}},
	{"Maiden Castle parkrun", models.Coordinate{Lat: 54.7660, Lon: -1.5620}},
	{"Heaton Park parkrun", models.Coordinate{Lat: 53.5370, Lon: -2.2520}},

	// Yorkshire and the Peak District
	{"Woodhouse Moor parkrun", models.Coordinate{Lat: 53.8123, Lon: -1.5658}},
	{"York parkrun", models.Coordinate{Lat: 53.9480, Lon: -1.0860}},
	{"Sheffield Hallam parkrun", models.Coordinate{Lat: 53.3680, Lon: -1.5180}},
	{"Hull parkrun", models.Coordinate{Lat: 53.7590, Lon: -0.3800}},
	{"Bakewell parkrun", models.Coordinate{Lat: 53.2130, Lon: -1.6740}},
	{"Buxton parkrun", models.Coordinate{Lat: 53.2590, Lon: -1.9160}},

	// Midlands and East England
	{"Cannon Hill parkrun", models.Coordinate{Lat: 52.4520, Lon: -1.9030}},
	{"Coventry parkrun", models.Coordinate{Lat: 52.3880, Lon: -1.5230}},
	{"Colwick parkrun", models.Coordinate{Lat: 52.9510, Lon: -1.0960}},
	{"Braunstone parkrun", models.Coordinate{Lat: 52.6190, Lon: -1.1880}},
	{"Newark parkrun", models.Coordinate{Lat: 53.0697, Lon: -0.8195}},
	{"Cambridge parkrun", models.Coordinate{Lat: 52.2140, Lon: 0.1000}},
	{"Norwich parkrun", models.Coordinate{Lat: 52.6200, Lon: 1.2400}},
	{"Colchester Castle parkrun", models.Coordinate{Lat: 51.8900, Lon: 0.9050}},
	{"Chelmsford Central parkrun", models.Coordinate{Lat: 51.7320, Lon: 0.4660}},

	// Scotland and Ireland
	{"Edinburgh parkrun", models.Coordinate{Lat: 55.9800, Lon: -3.2840}},
	{"Pollok parkrun", models.Coordinate{Lat: 55.8250, Lon: -4.3150}},
	{"Aberdeen parkrun", models.Coordinate{Lat: 57.1530, Lon: -2.0800}},
	{"Victoria parkrun", models.Coordinate{Lat: 54.6120, Lon: -5.8920}},
	{"Marlay parkrun", models.Coordinate{Lat: 53.2790, Lon: -6.2700}},
	{"Knocknacarra parkrun", models.Coordinate{Lat: 53.2610, Lon: -9.1050}},
	{"Ballincollig parkrun", models.Coordinate{Lat: 51.8880, Lon: -8.5880}},

	// Europe
	{"Kungsholmen parkrun", models.Coordinate{Lat: 59.3290, Lon: 18.0230}},
	{"Toyen parkrun", models.Coordinate{Lat: 59.9180, Lon: 10.7750}},
	{"Amager Faelled parkrun", models.Coordinate{Lat: 55.6570, Lon: 12.5760}},
	{"Montsouris parkrun", models.Coordinate{Lat: 48.8220, Lon: 2.3380}},
	{"Hasenheide parkrun", models.Coordinate{Lat: 52.4850, Lon: 13.4160}},
	{"Westerpark parkrun", models.Coordinate{Lat: 52.3860, Lon: 4.8750}},
	{"Praga parkrun", models.Coordinate{Lat: 52.2460, Lon: 21.0420}},

	// Rest of the world
	{"Albert parkrun, Melbourne", models.Coordinate{Lat: -37.8427, Lon: 144.9654}},
	{"Centennial parkrun", models.Coordinate{Lat: -33.8960, Lon: 151.2340}},
	{"Cornwall Park parkrun", models.Coordinate{Lat: -36.8940, Lon: 174.7800}},
	{"Hagley parkrun", models.Coordinate{Lat: -43.5310, Lon: 172.6200}},
	{"Delta parkrun, Johannesburg", models.Coordinate{Lat: -26.1363, Lon: 28.0163}},
	{"Kirstenbosch parkrun", models.Coordinate{Lat: -33.9880, Lon: 18.4320}},
	{"Anacostia parkrun", models.Coordinate{Lat: 38.8800, Lon: -76.9800}},
	{"Crissy Field parkrun", models.Coordinate{Lat: 37.8040, Lon: -122.4650}},
	{"Ashbridges Bay parkrun", models.Coordinate{Lat: 43.6610, Lon: -79.3100}},
	{"Richmond Olympic parkrun", models.Coordinate{Lat: 49.1740, Lon: -123.1480}},
	{"East Coast Park parkrun", models.Coordinate{Lat: 1.3000, Lon: 103.9120}},
	{"Futakotamagawa parkrun", models.Coordinate{Lat: 35.6100, Lon: 139.6290}},
}
