// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

// keywordRule maps name fragments to a region. When several rules match a
// name the rule listed first wins, so multi-word and overseas fragments
// precede the UK lists ("new york" before "york").
type keywordRule struct {
	label    string
	keywords []string
}

var keywordRules = []keywordRule{
	{RegionNewZealand, []string{"new zealand", "auckland", "christchurch", "dunedin", "hamilton lake", "queenstown"}},
	{RegionAustralia, []string{"australia", "melbourne", "sydney", "brisbane", "adelaide", "canberra", "hobart", "darwin", "gold coast"}},
	{RegionSouthAfrica, []string{"south africa", "johannesburg", "cape town", "durban", "pretoria", "stellenbosch"}},
	{RegionCanada, []string{"canada", "toronto", "vancouver", "ottawa", "montreal", "calgary", "winnipeg"}},
	{RegionUSAEast, []string{"new york", "boston", "washington dc", "philadelphia", "atlanta", "miami", "detroit"}},
	{RegionUSACentral, []string{"chicago", "dallas", "houston", "texas", "minneapolis", "kansas"}},
	{RegionUSAWest, []string{"california", "san francisco", "los angeles", "seattle", "portland", "oregon"}},
	{RegionScandinavia, []string{"sweden", "norway", "denmark", "finland", "stockholm", "oslo", "copenhagen", "helsinki", "malmo"}},
	{RegionEasternEurope, []string{"poland", "warsaw", "warszawa", "krakow", "gdansk", "lithuania", "vilnius"}},
	{RegionWesternEurope, []string{"germany", "france", "netherlands", "italy", "spain", "portugal", "berlin", "paris", "amsterdam", "munich", "lisbon"}},
	{RegionAsia, []string{"singapore", "japan", "tokyo", "malaysia", "kuala lumpur"}},
	{RegionScotland, []string{"scotland", "edinburgh", "glasgow", "aberdeen", "dundee", "inverness", "stirling", "fife"}},
	{RegionNorthernIreland, []string{"northern ireland", "belfast", "derry", "lisburn", "armagh", "newry"}},
	{RegionIreland, []string{"dublin", "cork", "galway", "limerick", "kilkenny", "waterford", "ireland"}},
	{RegionWales, []string{"wales", "cardiff", "swansea", "aberystwyth", "wrexham", "llandudno", "snowdon"}},
	{RegionLakeDistrict, []string{"keswick", "windermere", "ambleside", "kendal", "penrith", "fell foot", "cumbria"}},
	{RegionNorthEngland, []string{"newcastle", "durham", "sunderland", "gateshead", "middlesbrough", "northumberland", "tyne"}},
	{RegionYorkshire, []string{"yorkshire", "leeds", "york", "sheffield", "bradford", "harrogate", "humber", "huddersfield", "wakefield"}},
	{RegionPeakDistrict, []string{"peak district", "buxton", "bakewell", "matlock", "hathersage"}},
	{RegionWestMidlands, []string{"birmingham", "coventry", "wolverhampton", "solihull", "worcester", "stoke-on-trent", "cannon hill"}},
	{RegionEastMidlands, []string{"nottingham", "leicester", "derby", "lincoln", "northampton", "newark", "colwick", "braunstone"}},
	{RegionEastEngland, []string{"cambridge", "norwich", "ipswich", "colchester", "chelmsford", "peterborough", "norfolk", "suffolk"}},
	{RegionLondon, []string{"london", "bushy", "richmond", "wimbledon", "hackney", "finsbury", "greenwich", "hampstead", "crystal palace"}},
	{RegionSouthWest, []string{"bristol", "exeter", "plymouth", "cornwall", "devon", "somerset", "gloucester", "cheltenham", "bath"}},
	{RegionHampshire, []string{"hampshire", "southampton", "portsmouth", "winchester", "whiteley", "basingstoke", "netley", "havant", "eastleigh"}},
	{RegionSurrey, []string{"surrey", "guildford", "reigate", "woking", "epsom", "dorking"}},
	{RegionWestSussex, []string{"chichester", "worthing", "crawley", "horsham", "bognor"}},
	{RegionKentEastSussex, []string{"kent", "brighton", "eastbourne", "canterbury", "maidstone", "hastings", "tunbridge"}},
	{RegionSouthCoast, []string{"bournemouth", "poole", "weymouth", "dorset", "swanage"}},
}
