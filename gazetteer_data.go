package locres

// Airport is one row of the static gazetteer.
type Airport struct {
	Code      string  // IATA code
	Name      string  // official airport name
	City      string
	Country   string
	CityAlt   string // alternate city names, comma-separated
	Latitude  float64
	Longitude float64
	// Rank orders airports serving the same city: 1 is the primary
	// international airport, higher numbers are secondary. Drives the
	// major-airport preference for multi-airport cities.
	Rank int
}

// airportTable is the compiled-in gazetteer. Coordinates are airport
// reference points, not city centers.
var airportTable = []Airport{
	// North America
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", Country: "United States", Latitude: 33.6407, Longitude: -84.4277, Rank: 1},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "United States", CityAlt: "la", Latitude: 33.9416, Longitude: -118.4085, Rank: 1},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "United States", Latitude: 41.9742, Longitude: -87.9073, Rank: 1},
	{Code: "MDW", Name: "Chicago Midway International", City: "Chicago", Country: "United States", Latitude: 41.7868, Longitude: -87.7522, Rank: 2},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "United States", CityAlt: "fort worth", Latitude: 32.8998, Longitude: -97.0403, Rank: 1},
	{Code: "DEN", Name: "Denver International", City: "Denver", Country: "United States", Latitude: 39.8561, Longitude: -104.6737, Rank: 1},
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States", CityAlt: "new york city,nyc", Latitude: 40.6413, Longitude: -73.7781, Rank: 1},
	{Code: "EWR", Name: "Newark Liberty International", City: "New York", Country: "United States", CityAlt: "newark", Latitude: 40.6895, Longitude: -74.1745, Rank: 2},
	{Code: "LGA", Name: "LaGuardia", City: "New York", Country: "United States", Latitude: 40.7769, Longitude: -73.8740, Rank: 3},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "United States", Latitude: 37.6213, Longitude: -122.3790, Rank: 1},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Country: "United States", Latitude: 47.4502, Longitude: -122.3088, Rank: 1},
	{Code: "MIA", Name: "Miami International", City: "Miami", Country: "United States", Latitude: 25.7959, Longitude: -80.2870, Rank: 1},
	{Code: "BOS", Name: "Logan International", City: "Boston", Country: "United States", Latitude: 42.3656, Longitude: -71.0096, Rank: 1},
	{Code: "IAD", Name: "Washington Dulles International", City: "Washington", Country: "United States", CityAlt: "washington dc,dc", Latitude: 38.9531, Longitude: -77.4565, Rank: 1},
	{Code: "DCA", Name: "Ronald Reagan Washington National", City: "Washington", Country: "United States", Latitude: 38.8512, Longitude: -77.0402, Rank: 2},
	{Code: "IAH", Name: "George Bush Intercontinental", City: "Houston", Country: "United States", Latitude: 29.9902, Longitude: -95.3368, Rank: 1},
	{Code: "AUS", Name: "Austin-Bergstrom International", City: "Austin", Country: "United States", Latitude: 30.1975, Longitude: -97.6664, Rank: 1},
	{Code: "PHX", Name: "Phoenix Sky Harbor International", City: "Phoenix", Country: "United States", Latitude: 33.4373, Longitude: -112.0078, Rank: 1},
	{Code: "LAS", Name: "Harry Reid International", City: "Las Vegas", Country: "United States", CityAlt: "vegas", Latitude: 36.0840, Longitude: -115.1537, Rank: 1},
	{Code: "MCO", Name: "Orlando International", City: "Orlando", Country: "United States", Latitude: 28.4312, Longitude: -81.3081, Rank: 1},
	{Code: "MSP", Name: "Minneapolis-Saint Paul International", City: "Minneapolis", Country: "United States", Latitude: 44.8848, Longitude: -93.2223, Rank: 1},
	{Code: "DTW", Name: "Detroit Metropolitan Wayne County", City: "Detroit", Country: "United States", Latitude: 42.2162, Longitude: -83.3554, Rank: 1},
	{Code: "PHL", Name: "Philadelphia International", City: "Philadelphia", Country: "United States", Latitude: 39.8744, Longitude: -75.2424, Rank: 1},
	{Code: "CLT", Name: "Charlotte Douglas International", City: "Charlotte", Country: "United States", Latitude: 35.2144, Longitude: -80.9473, Rank: 1},
	{Code: "SAN", Name: "San Diego International", City: "San Diego", Country: "United States", Latitude: 32.7338, Longitude: -117.1933, Rank: 1},
	{Code: "PDX", Name: "Portland International", City: "Portland", Country: "United States", Latitude: 45.5898, Longitude: -122.5951, Rank: 1},
	{Code: "SLC", Name: "Salt Lake City International", City: "Salt Lake City", Country: "United States", Latitude: 40.7899, Longitude: -111.9791, Rank: 1},
	{Code: "BNA", Name: "Nashville International", City: "Nashville", Country: "United States", Latitude: 36.1263, Longitude: -86.6774, Rank: 1},
	{Code: "HNL", Name: "Daniel K. Inouye International", City: "Honolulu", Country: "United States", Latitude: 21.3245, Longitude: -157.9251, Rank: 1},
	{Code: "ANC", Name: "Ted Stevens Anchorage International", City: "Anchorage", Country: "United States", Latitude: 61.1743, Longitude: -149.9962, Rank: 1},
	{Code: "YYZ", Name: "Toronto Pearson International", City: "Toronto", Country: "Canada", Latitude: 43.6777, Longitude: -79.6248, Rank: 1},
	{Code: "YVR", Name: "Vancouver International", City: "Vancouver", Country: "Canada", Latitude: 49.1947, Longitude: -123.1792, Rank: 1},
	{Code: "YUL", Name: "Montreal-Trudeau International", City: "Montreal", Country: "Canada", CityAlt: "montréal", Latitude: 45.4706, Longitude: -73.7408, Rank: 1},
	{Code: "YYC", Name: "Calgary International", City: "Calgary", Country: "Canada", Latitude: 51.1215, Longitude: -114.0076, Rank: 1},
	{Code: "MEX", Name: "Benito Juárez International", City: "Mexico City", Country: "Mexico", CityAlt: "ciudad de mexico", Latitude: 19.4363, Longitude: -99.0721, Rank: 1},
	{Code: "CUN", Name: "Cancún International", City: "Cancun", Country: "Mexico", CityAlt: "cancún", Latitude: 21.0365, Longitude: -86.8771, Rank: 1},
	{Code: "GDL", Name: "Guadalajara International", City: "Guadalajara", Country: "Mexico", Latitude: 20.5218, Longitude: -103.3111, Rank: 1},

	// Central America & Caribbean
	{Code: "SJO", Name: "Juan Santamaría International", City: "San Jose", Country: "Costa Rica", CityAlt: "san josé,san jose costa rica", Latitude: 9.9939, Longitude: -84.2088, Rank: 1},
	{Code: "LIR", Name: "Daniel Oduber Quirós International", City: "Liberia", Country: "Costa Rica", CityAlt: "liberia costa rica,guanacaste", Latitude: 10.5933, Longitude: -85.5444, Rank: 1},
	{Code: "PTY", Name: "Tocumen International", City: "Panama City", Country: "Panama", CityAlt: "panama", Latitude: 9.0714, Longitude: -79.3835, Rank: 1},
	{Code: "HAV", Name: "José Martí International", City: "Havana", Country: "Cuba", Latitude: 22.9892, Longitude: -82.4091, Rank: 1},
	{Code: "SJU", Name: "Luis Muñoz Marín International", City: "San Juan", Country: "Puerto Rico", Latitude: 18.4394, Longitude: -66.0018, Rank: 1},
	{Code: "GUA", Name: "La Aurora International", City: "Guatemala City", Country: "Guatemala", Latitude: 14.5833, Longitude: -90.5275, Rank: 1},

	// South America
	{Code: "GRU", Name: "São Paulo-Guarulhos International", City: "Sao Paulo", Country: "Brazil", CityAlt: "são paulo", Latitude: -23.4356, Longitude: -46.4731, Rank: 1},
	{Code: "GIG", Name: "Rio de Janeiro-Galeão International", City: "Rio de Janeiro", Country: "Brazil", CityAlt: "rio", Latitude: -22.8100, Longitude: -43.2506, Rank: 1},
	{Code: "EZE", Name: "Ministro Pistarini International", City: "Buenos Aires", Country: "Argentina", Latitude: -34.8222, Longitude: -58.5358, Rank: 1},
	{Code: "SCL", Name: "Arturo Merino Benítez International", City: "Santiago", Country: "Chile", Latitude: -33.3930, Longitude: -70.7858, Rank: 1},
	{Code: "LIM", Name: "Jorge Chávez International", City: "Lima", Country: "Peru", Latitude: -12.0219, Longitude: -77.1143, Rank: 1},
	{Code: "BOG", Name: "El Dorado International", City: "Bogota", Country: "Colombia", CityAlt: "bogotá", Latitude: 4.7016, Longitude: -74.1469, Rank: 1},
	{Code: "UIO", Name: "Mariscal Sucre International", City: "Quito", Country: "Ecuador", Latitude: -0.1292, Longitude: -78.3575, Rank: 1},
	{Code: "MVD", Name: "Carrasco International", City: "Montevideo", Country: "Uruguay", Latitude: -34.8384, Longitude: -56.0308, Rank: 1},

	// Europe
	{Code: "LHR", Name: "Heathrow", City: "London", Country: "United Kingdom", Latitude: 51.4700, Longitude: -0.4543, Rank: 1},
	{Code: "LGW", Name: "Gatwick", City: "London", Country: "United Kingdom", Latitude: 51.1537, Longitude: -0.1821, Rank: 2},
	{Code: "STN", Name: "Stansted", City: "London", Country: "United Kingdom", Latitude: 51.8860, Longitude: 0.2389, Rank: 3},
	{Code: "MAN", Name: "Manchester", City: "Manchester", Country: "United Kingdom", Latitude: 53.3654, Longitude: -2.2728, Rank: 1},
	{Code: "EDI", Name: "Edinburgh", City: "Edinburgh", Country: "United Kingdom", Latitude: 55.9508, Longitude: -3.3615, Rank: 1},
	{Code: "DUB", Name: "Dublin", City: "Dublin", Country: "Ireland", Latitude: 53.4264, Longitude: -6.2499, Rank: 1},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Latitude: 49.0097, Longitude: 2.5479, Rank: 1},
	{Code: "ORY", Name: "Orly", City: "Paris", Country: "France", Latitude: 48.7262, Longitude: 2.3652, Rank: 2},
	{Code: "NCE", Name: "Nice Côte d'Azur", City: "Nice", Country: "France", Latitude: 43.6584, Longitude: 7.2159, Rank: 1},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", CityAlt: "frankfurt am main", Latitude: 50.0379, Longitude: 8.5622, Rank: 1},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", CityAlt: "münchen,muenchen", Latitude: 48.3537, Longitude: 11.7750, Rank: 1},
	{Code: "BER", Name: "Berlin Brandenburg", City: "Berlin", Country: "Germany", Latitude: 52.3667, Longitude: 13.5033, Rank: 1},
	{Code: "HAM", Name: "Hamburg Airport", City: "Hamburg", Country: "Germany", Latitude: 53.6304, Longitude: 9.9882, Rank: 1},
	{Code: "DUS", Name: "Düsseldorf Airport", City: "Dusseldorf", Country: "Germany", CityAlt: "düsseldorf", Latitude: 51.2895, Longitude: 6.7668, Rank: 1},
	{Code: "AMS", Name: "Amsterdam Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.3105, Longitude: 4.7683, Rank: 1},
	{Code: "BRU", Name: "Brussels Airport", City: "Brussels", Country: "Belgium", Latitude: 50.9010, Longitude: 4.4856, Rank: 1},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", CityAlt: "zürich", Latitude: 47.4582, Longitude: 8.5555, Rank: 1},
	{Code: "GVA", Name: "Geneva Airport", City: "Geneva", Country: "Switzerland", CityAlt: "genève", Latitude: 46.2381, Longitude: 6.1090, Rank: 1},
	{Code: "VIE", Name: "Vienna International", City: "Vienna", Country: "Austria", CityAlt: "wien", Latitude: 48.1103, Longitude: 16.5697, Rank: 1},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas", City: "Madrid", Country: "Spain", Latitude: 40.4983, Longitude: -3.5676, Rank: 1},
	{Code: "BCN", Name: "Josep Tarradellas Barcelona-El Prat", City: "Barcelona", Country: "Spain", Latitude: 41.2974, Longitude: 2.0833, Rank: 1},
	{Code: "LIS", Name: "Humberto Delgado", City: "Lisbon", Country: "Portugal", CityAlt: "lisboa", Latitude: 38.7742, Longitude: -9.1342, Rank: 1},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino", City: "Rome", Country: "Italy", CityAlt: "roma", Latitude: 41.8003, Longitude: 12.2389, Rank: 1},
	{Code: "MXP", Name: "Milan Malpensa", City: "Milan", Country: "Italy", CityAlt: "milano", Latitude: 45.6306, Longitude: 8.7281, Rank: 1},
	{Code: "VCE", Name: "Venice Marco Polo", City: "Venice", Country: "Italy", CityAlt: "venezia", Latitude: 45.5053, Longitude: 12.3519, Rank: 1},
	{Code: "ATH", Name: "Athens International", City: "Athens", Country: "Greece", Latitude: 37.9364, Longitude: 23.9445, Rank: 1},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark", CityAlt: "københavn", Latitude: 55.6180, Longitude: 12.6508, Rank: 1},
	{Code: "OSL", Name: "Oslo Gardermoen", City: "Oslo", Country: "Norway", Latitude: 60.1976, Longitude: 11.1004, Rank: 1},
	{Code: "ARN", Name: "Stockholm Arlanda", City: "Stockholm", Country: "Sweden", Latitude: 59.6498, Longitude: 17.9239, Rank: 1},
	{Code: "HEL", Name: "Helsinki-Vantaa", City: "Helsinki", Country: "Finland", Latitude: 60.3183, Longitude: 24.9497, Rank: 1},
	{Code: "WAW", Name: "Warsaw Chopin", City: "Warsaw", Country: "Poland", CityAlt: "warszawa", Latitude: 52.1672, Longitude: 20.9679, Rank: 1},
	{Code: "PRG", Name: "Václav Havel Airport Prague", City: "Prague", Country: "Czech Republic", CityAlt: "praha", Latitude: 50.1008, Longitude: 14.2632, Rank: 1},
	{Code: "BUD", Name: "Budapest Ferenc Liszt International", City: "Budapest", Country: "Hungary", Latitude: 47.4298, Longitude: 19.2611, Rank: 1},
	{Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Latitude: 41.2753, Longitude: 28.7519, Rank: 1},

	// Middle East & Africa
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "United Arab Emirates", Latitude: 25.2532, Longitude: 55.3657, Rank: 1},
	{Code: "AUH", Name: "Zayed International", City: "Abu Dhabi", Country: "United Arab Emirates", Latitude: 24.4539, Longitude: 54.6489, Rank: 1},
	{Code: "DOH", Name: "Hamad International", City: "Doha", Country: "Qatar", Latitude: 25.2731, Longitude: 51.6081, Rank: 1},
	{Code: "TLV", Name: "Ben Gurion", City: "Tel Aviv", Country: "Israel", Latitude: 32.0055, Longitude: 34.8854, Rank: 1},
	{Code: "RUH", Name: "King Khalid International", City: "Riyadh", Country: "Saudi Arabia", Latitude: 24.9576, Longitude: 46.6988, Rank: 1},
	{Code: "CAI", Name: "Cairo International", City: "Cairo", Country: "Egypt", Latitude: 30.1219, Longitude: 31.4056, Rank: 1},
	{Code: "CMN", Name: "Mohammed V International", City: "Casablanca", Country: "Morocco", Latitude: 33.3675, Longitude: -7.5900, Rank: 1},
	{Code: "JNB", Name: "O. R. Tambo International", City: "Johannesburg", Country: "South Africa", Latitude: -26.1367, Longitude: 28.2411, Rank: 1},
	{Code: "CPT", Name: "Cape Town International", City: "Cape Town", Country: "South Africa", Latitude: -33.9715, Longitude: 18.6021, Rank: 1},
	{Code: "NBO", Name: "Jomo Kenyatta International", City: "Nairobi", Country: "Kenya", Latitude: -1.3192, Longitude: 36.9278, Rank: 1},
	{Code: "LOS", Name: "Murtala Muhammed International", City: "Lagos", Country: "Nigeria", Latitude: 6.5774, Longitude: 3.3212, Rank: 1},
	{Code: "ADD", Name: "Addis Ababa Bole International", City: "Addis Ababa", Country: "Ethiopia", Latitude: 8.9778, Longitude: 38.7993, Rank: 1},
	// Monrovia disambiguates against Liberia, Costa Rica: bare "liberia"
	// refers to the Costa Rican city, "monrovia" or "liberia africa"
	// context refers to ROB.
	{Code: "ROB", Name: "Roberts International", City: "Monrovia", Country: "Liberia", CityAlt: "monrovia liberia", Latitude: 6.2339, Longitude: -10.3623, Rank: 1},

	// Asia & Oceania
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", City: "Mumbai", Country: "India", CityAlt: "bombay", Latitude: 19.0896, Longitude: 72.8656, Rank: 1},
	{Code: "DEL", Name: "Indira Gandhi International", City: "Delhi", Country: "India", CityAlt: "new delhi", Latitude: 28.5562, Longitude: 77.1000, Rank: 1},
	{Code: "BLR", Name: "Kempegowda International", City: "Bangalore", Country: "India", CityAlt: "bengaluru", Latitude: 13.1986, Longitude: 77.7066, Rank: 1},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore", Latitude: 1.3644, Longitude: 103.9915, Rank: 1},
	{Code: "BKK", Name: "Suvarnabhumi", City: "Bangkok", Country: "Thailand", Latitude: 13.6900, Longitude: 100.7501, Rank: 1},
	{Code: "KUL", Name: "Kuala Lumpur International", City: "Kuala Lumpur", Country: "Malaysia", Latitude: 2.7456, Longitude: 101.7099, Rank: 1},
	{Code: "CGK", Name: "Soekarno-Hatta International", City: "Jakarta", Country: "Indonesia", Latitude: -6.1256, Longitude: 106.6559, Rank: 1},
	{Code: "MNL", Name: "Ninoy Aquino International", City: "Manila", Country: "Philippines", Latitude: 14.5086, Longitude: 121.0194, Rank: 1},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "China", Latitude: 22.3080, Longitude: 113.9185, Rank: 1},
	{Code: "PVG", Name: "Shanghai Pudong International", City: "Shanghai", Country: "China", Latitude: 31.1443, Longitude: 121.8083, Rank: 1},
	{Code: "PEK", Name: "Beijing Capital International", City: "Beijing", Country: "China", Latitude: 40.0799, Longitude: 116.6031, Rank: 1},
	{Code: "CAN", Name: "Guangzhou Baiyun International", City: "Guangzhou", Country: "China", Latitude: 23.3924, Longitude: 113.2988, Rank: 1},
	{Code: "TPE", Name: "Taiwan Taoyuan International", City: "Taipei", Country: "Taiwan", Latitude: 25.0797, Longitude: 121.2342, Rank: 1},
	{Code: "ICN", Name: "Incheon International", City: "Seoul", Country: "South Korea", Latitude: 37.4602, Longitude: 126.4407, Rank: 1},
	{Code: "HND", Name: "Tokyo Haneda", City: "Tokyo", Country: "Japan", Latitude: 35.5494, Longitude: 139.7798, Rank: 1},
	{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan", CityAlt: "narita", Latitude: 35.7720, Longitude: 140.3929, Rank: 2},
	{Code: "KIX", Name: "Kansai International", City: "Osaka", Country: "Japan", Latitude: 34.4347, Longitude: 135.2441, Rank: 1},
	{Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", Latitude: -33.9399, Longitude: 151.1753, Rank: 1},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Latitude: -37.6690, Longitude: 144.8410, Rank: 1},
	{Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia", Latitude: -27.3842, Longitude: 153.1175, Rank: 1},
	{Code: "PER", Name: "Perth Airport", City: "Perth", Country: "Australia", Latitude: -31.9385, Longitude: 115.9672, Rank: 1},
	{Code: "AKL", Name: "Auckland Airport", City: "Auckland", Country: "New Zealand", Latitude: -37.0082, Longitude: 174.7850, Rank: 1},
}
