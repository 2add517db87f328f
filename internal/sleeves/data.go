package sleeves

// Built-in catalog data. Phrase bags are English plus Dutch; matching is
// whole-token against prepared text, so casing and punctuation here are
// cosmetic.

func defaultSleeves() map[string]Sleeve {
	standardPoints := Points{
		TitleHit:       3,
		ContextHit:     2,
		BonusHit:       1,
		NegativeHit:    -3,
		TitleGateBonus: 1,
		CoverageBonus:  1,
	}

	sleeves := map[string]Sleeve{
		"A": {
			ID:      "A",
			Name:    "Music Events & Festivals",
			Tagline: "Creative + operations roles in international live music where shows, teams, and on-site delivery must align.",
			Keywords: Keywords{
				TitlePositive: []string{
					"event producer",
					"festival producer",
					"tour manager",
					"production manager",
					"show caller",
					"stage manager",
					"artist liaison",
					"technical producer",
					"venue operations manager",
					"event operations manager",
					"live production manager",
					"music events coordinator",
					"festival operations manager",
					"show operations manager",
					"concert production manager",
				},
				ContextPositive: []string{
					"festival",
					"concert",
					"tour",
					"touring",
					"live music",
					"music events",
					"crew scheduling",
					"artist hospitality",
					"backstage",
					"show control",
					"load-in",
					"load out",
					"production office",
					"stakeholder alignment",
					"on-site",
					"travel rotations",
					"international events",
					"FOH",
					"lighting",
					"audio",
				},
				Negative: []string{
					"inside sales",
					"account executive",
					"sdr",
					"door-to-door",
					"callcenter",
				},
			},
			MustHaves: MustHaves{
				MinTitleHits: 1,
				MinTotalHits: 2,
				BonusSignals: []string{
					"touring",
					"international travel",
					"festival operations",
					"artist liaison",
					"show operations",
				},
			},
			Points: standardPoints,
			CapMax: 5,
			SearchQueries: []string{
				"festival operations",
				"live event operations",
				"concert production coordinator",
				"tour manager",
				"touring production manager",
				"stage manager live",
				"artist liaison",
				"venue operations manager",
				"event production manager",
				"production coordinator live events",
				"festival operations manager",
				"evenementen coordinator",
				"live event productiemanager",
				"podium manager live events",
				"tour manager muziek",
			},
		},
		"B": {
			ID:      "B",
			Name:    "Theme Parks & Destinations",
			Tagline: "Experience delivery + operations discipline for theme parks and immersive destinations in multi-site international settings.",
			Keywords: Keywords{
				TitlePositive: []string{
					"theme park operations manager",
					"attractions operations manager",
					"guest experience manager",
					"show operations manager",
					"ride operations manager",
					"destination operations manager",
					"park operations supervisor",
					"entertainment operations manager",
					"experience operations manager",
					"resort operations manager",
					"site operations manager",
					"operations duty manager",
				},
				ContextPositive: []string{
					"theme park",
					"amusement park",
					"attractions",
					"immersive destination",
					"guest flow",
					"queue management",
					"safety",
					"maintenance window",
					"show quality",
					"multi-site",
					"destination",
					"resort",
					"park opening",
					"park closing",
					"staffing plan",
					"SOP",
				},
				Negative: []string{
					"inside sales",
					"account executive",
					"sdr",
					"callcenter",
				},
			},
			MustHaves: MustHaves{
				MinTitleHits: 1,
				MinTotalHits: 2,
				BonusSignals: []string{
					"theme park",
					"attractions",
					"guest flow",
					"safety",
					"show quality",
				},
			},
			Points: standardPoints,
			CapMax: 5,
			SearchQueries: []string{
				"theme park operations",
				"attractions operations",
				"entertainment operations manager",
				"park operations supervisor",
				"guest experience operations",
				"ride operations",
				"duty manager theme park",
				"show operations theme park",
				"destination operations",
				"destination operations manager",
				"resort operations",
				"visitor experience manager",
				"operationeel manager pretpark",
				"gastbeleving manager",
				"operaties manager attractiepark",
				"resort operations manager",
				"bestemming operations manager",
			},
		},
		"C": {
			ID:      "C",
			Name:    "Data Centers & Facilities",
			Tagline: "AI/compute infrastructure operations where reliability, safety, scaling, and execution across sites are central.",
			Keywords: Keywords{
				TitlePositive: []string{
					"data center operations",
					"data centre operations",
					"facility operations manager",
					"critical facilities technician",
					"site operations manager",
					"commissioning engineer",
					"commissioning manager",
					"capacity planner",
					"infrastructure operations manager",
					"mission critical operations",
					"facilities coordinator",
					"technical program manager",
					"operations program manager",
					"vendor manager",
					"site reliability engineer",
					"mep engineer",
					"electrical engineer data center",
					"facilities engineer",
				},
				ContextPositive: []string{
					"data center",
					"data centre",
					"colocation",
					"hyperscale",
					"uptime",
					"availability",
					"redundancy",
					"mission critical",
					"commissioning",
					"capacity expansion",
					"build-out",
					"vendor coordination",
					"change management",
					"maintenance window",
					"ai infrastructure",
					"gpu cluster",
					"compute infrastructure",
					"facility reliability",
					"site visit",
					"mep",
					"electrical",
					"hvac",
					"bms",
					"ups",
					"generator",
					"switchgear",
					"chiller",
					"mission critical facilities",
					"site commissioning",
					"facility management",
				},
				Negative: []string{
					"inside sales",
					"account executive",
					"sdr",
					"callcenter",
				},
			},
			MustHaves: MustHaves{
				MinTitleHits: 1,
				MinTotalHits: 2,
				BonusSignals: []string{
					"data center",
					"critical facilities",
					"commissioning",
					"uptime",
					"compute infrastructure",
				},
			},
			Points: standardPoints,
			CapMax: 5,
			SearchQueries: []string{
				"data center operations",
				"critical facilities technician",
				"facility engineer data center",
				"commissioning engineer data center",
				"mission critical facilities",
				"mep engineer data center",
				"facilities operations manager",
				"bms operator data center",
				"site reliability engineer infrastructure",
				"colocation operations",
				"datacenter operations",
				"kritieke faciliteiten technicus",
				"commissioning engineer datacenter",
				"mep engineer datacenter",
				"facilitair engineer datacenter",
			},
		},
		"D": {
			ID:      "D",
			Name:    "Value Chains & Ecosystems",
			Tagline: "Operations roles where cross-site flow, vendor ecosystems, and delivery reliability need structured execution.",
			Keywords: Keywords{
				TitlePositive: []string{
					"supply chain manager",
					"supply chain operations",
					"logistics operations manager",
					"ecosystem manager",
					"partner operations manager",
					"vendor operations manager",
					"implementation manager",
					"rollout manager",
					"program manager supply chain",
					"operations coordinator",
					"network operations manager",
					"procurement operations",
					"distribution operations",
					"fulfillment operations",
					"delivery operations",
				},
				ContextPositive: []string{
					"supply chain",
					"logistics",
					"inventory flow",
					"demand planning",
					"vendor management",
					"partner ecosystem",
					"cross-site rollout",
					"multi-site",
					"implementation",
					"standard operating procedures",
					"workflow",
					"rollout",
					"reliability",
					"service levels",
					"distribution center",
					"transport planning",
					"last mile",
					"global trade",
					"international suppliers",
					"ecosystem",
					"3pl",
					"freight",
					"freight forwarding",
					"customs",
					"import export",
					"warehouse",
					"wms",
					"sap",
					"oracle",
					"procurement",
					"sourcing",
				},
				Negative: []string{
					"inside sales",
					"account executive",
					"sdr",
					"cold calling",
				},
			},
			MustHaves: MustHaves{
				MinTitleHits: 1,
				MinTotalHits: 2,
				BonusSignals: []string{
					"supply chain",
					"vendor management",
					"partner ecosystem",
					"rollout",
					"implementation",
				},
			},
			Points: standardPoints,
			CapMax: 5,
			SearchQueries: []string{
				"supply chain operations",
				"logistics operations manager",
				"vendor operations",
				"partner operations",
				"implementation manager supply chain",
				"rollout",
				"rollout manager operations",
				"procurement operations",
				"distribution operations",
				"warehouse operations manager",
				"service delivery operations",
				"supply chain operations manager",
				"logistiek operations manager",
				"vendor manager operations",
				"inkoop operations",
			},
		},
		"E": {
			ID:      "E",
			Name:    "Custom / User-defined Career Sleeve",
			Tagline: "User-configurable career sleeve for custom role archetypes, keywords, exclusions, and locations.",
			Keywords: Keywords{
				TitlePositive: []string{
					"operations manager",
					"program manager",
					"project manager",
					"implementation manager",
					"operations coordinator",
					"consultant",
					"specialist",
					"producer",
					"engineer",
					"analyst",
				},
				ContextPositive: []string{
					"operations",
					"delivery",
					"workflow",
					"process",
					"implementation",
					"coordination",
					"stakeholder",
					"cross-functional",
					"site",
					"quality",
					"reliability",
					"planning",
					"execution",
				},
				Negative: []string{
					"inside sales",
					"account executive",
					"sdr",
					"cold calling",
					"door-to-door",
				},
			},
			MustHaves: MustHaves{
				MinTitleHits: 0,
				MinTotalHits: 1,
			},
			Points: standardPoints,
			CapMax: 5,
		},
	}

	b := sleeves["B"]
	b.Points.NegativeHit = -5
	sleeves["B"] = b
	c := sleeves["C"]
	c.Points.NegativeHit = -4
	sleeves["C"] = c
	d := sleeves["D"]
	d.Points.NegativeHit = -4
	sleeves["D"] = d
	e := sleeves["E"]
	e.Points.NegativeHit = -4
	sleeves["E"] = e

	return sleeves
}

func defaultAbroadGroups() []SignalGroup {
	return []SignalGroup{
		{
			Name: "remote_or_hybrid",
			Positive: []string{
				"remote",
				"hybrid",
				"hybride",
				"work from home",
				"thuiswerk",
				"op afstand",
				"wfh",
				"remote first",
				"remote-first",
				"distributed team",
				"fully remote",
			},
			Negative: []string{
				"on-site only",
				"on site only",
				"100% on site",
				"must be onsite",
				"must be on site",
				"no remote",
				"office based",
				"kantoorplicht",
			},
			PositiveWeight: 2,
			NegativeWeight: -3,
		},
		{
			Name: "work_from_abroad_policy",
			Positive: []string{
				"work from abroad",
				"werken vanuit buitenland",
				"werk vanuit het buitenland",
				"international remote",
				"workation",
				"work from anywhere",
				"remote within europe",
				"op afstand binnen europa",
				"anywhere in eu",
				"overal in de eu",
				"global mobility",
				"international mobility",
				"internationale mobiliteit",
				"employer of record",
			},
			Negative: []string{
				"no work from abroad",
				"netherlands only",
				"alleen vanuit nederland",
				"woonachtig in nederland",
				"must be located in the netherlands",
			},
			PositiveWeight: 2,
			NegativeWeight: -2,
		},
		{
			Name: "travel_component",
			Positive: []string{
				"travel",
				"travelling",
				"international travel",
				"reisbereid",
				"reizen",
				"internationaal reizen",
				"emea travel",
				"apac travel",
				"site visits",
				"site visit",
				"client sites",
				"client site",
				"on location",
				"op locatie",
				"klantlocatie",
				"klantbezoek",
				"multi-site",
				"multisite",
				"cross-site",
				"field visits",
				"rotations",
				"travel rotations",
				"relocation",
				"relocate",
				"relocating",
			},
			Negative: []string{
				"no travel required",
				"geen reisbereidheid nodig",
				"without travel",
				"zonder reizen",
			},
			PositiveWeight: 1,
			NegativeWeight: -1,
		},
	}
}

var synergySignals = []string{
	"international",
	"operations",
	"delivery",
	"multi-site",
	"travel",
	"on-site",
	"stakeholder",
	"workflow",
	"reliability",
	"commissioning",
	"ecosystem",
	"infrastructure",
}

var softPenalties = []PenaltyRule{
	{
		IfAny:         []string{"Account Executive", "SDR", "Sales Development"},
		PenaltyPoints: 12,
		Reason:        "Sales-heavy role signal detected.",
	},
	{
		IfAny:         []string{"cold calling", "commission only", "door-to-door"},
		PenaltyPoints: 10,
		Reason:        "High-friction sales context detected.",
	},
	{
		IfAny:         []string{"Technical Account Manager"},
		PenaltyPoints: 20,
		Reason:        "Technical Account Manager profile likely outside target fit.",
	},
}

var hardRejectTitlePatterns = []string{
	"Account Executive",
	"SDR",
	"Sales Development",
	"Sales Development Representative",
	"Technical Account Manager",
}

var hardRejectTextPatterns = []string{
	"door-to-door",
	"commission only",
}

var hardRejectColdCallingContext = []string{
	"sales",
	"quota",
	"business development",
}
