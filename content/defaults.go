package content

import (
	"time"

	"github.com/lixenwraith/eco-clicker/constants"
)

// Default returns a fresh copy of the built-in catalog
func Default() *Catalog {
	return &Catalog{
		Upgrades: []UpgradeDef{
			{ID: "helmet", Name: "Aero Helmet", BaseCost: 10, Effect: 1.1,
				Description: "Cuts wind resistance, +10% speed"},
			{ID: "bike-lane", Name: "Bike Lane", BaseCost: 25, Effect: 1.25,
				Description: "Dedicated lanes, +25% speed"},
			{ID: "carbon-bike", Name: "Carbon Bike", BaseCost: 150, Effect: 1.5,
				Description: "Lighter frame, +50% speed"},
			{ID: "sport-nutrition", Name: "Sport Nutrition", BaseCost: 500, Effect: 1.6,
				Description: "Better endurance and recovery, +60% speed"},
			{ID: "lubrication", Name: "Super Lubrication", BaseCost: 1000, Effect: 2.0,
				Description: "Frictionless chain, +100% speed"},
			{ID: "training", Name: "Intensive Training", BaseCost: 2000, Effect: 2.5,
				Description: "Stronger legs, +150% speed"},
			{ID: "aero", Name: "Perfect Aerodynamics", BaseCost: 4000, Effect: 3.5,
				Description: "Optimized position and gear, +250% speed"},
			{ID: "exoskeleton", Name: "Assisted Exoskeleton", BaseCost: 7000, Effect: 5.0,
				Description: "Powered pedalling, +400% speed"},
			{ID: "gravity-bike", Name: "Gravity-Assist Bike", BaseCost: 12000, Effect: 7.0,
				Description: "Futuristic frictionless ride, +600% speed"},
		},
		Bonuses: []BonusDef{
			{ID: "sprint", Name: "Sprint", Multiplier: 3, Duration: 30 * time.Second, Cost: 50,
				Description: "Triple speed for 30 seconds"},
			{ID: "peloton", Name: "Peloton Effect", Multiplier: 5, Duration: 15 * time.Second, Cost: 100,
				Description: "Quintuple speed for 15 seconds"},
			{ID: constants.BonusAutoPedal, Name: "Auto-Pedal", Duration: 60 * time.Second, Cost: 200, AutoPedal: true,
				Description: "Pedals by itself for 60 seconds"},
		},
		Tips: []Tip{
			{Title: "Did you know?",
				Content: "A 5 km bike ride emits 0 g of CO2, against about 1.3 kg by car."},
			{Title: "Ecological impact",
				Content: "Transport accounts for 30% of greenhouse gas emissions in France."},
			{Title: "Health",
				Content: "30 minutes of cycling a day cuts cardiovascular risk by 30%."},
		},
		Questions: []Question{
			{Text: "What share of France's CO2 emissions comes from transport?",
				Options: []string{"15%", "30%"}, Correct: 1},
			{Text: "How much CO2 is saved per km by bike instead of car?",
				Options: []string{"100g", "150g"}, Correct: 0},
			{Text: "How far can you ride in 15 minutes in a city, on average?",
				Options: []string{"1km", "2km"}, Correct: 1},
		},
		Feedback: Feedback{
			CorrectTitle:   "Well done!",
			CorrectContent: "Your multiplier has doubled!",
			WrongTitle:     "Too bad!",
			WrongContent:   "Your multiplier has been halved.",
		},
	}
}
