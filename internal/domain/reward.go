package domain

type RewardDisplay struct {
	Name  string
	Color string
}

// Display names and colors for the reward types that appear in quest and
// challenge definitions. Unknown types fall back to the raw type in gray.
var rewardDisplays = map[string]RewardDisplay{
	"MultipliedCoinReward":       {Name: "Coins", Color: "gold"},
	"CoinReward":                 {Name: "Coins", Color: "gold"},
	"MultipliedExperienceReward": {Name: "Experience", Color: "darkAqua"},
	"ExperienceReward":           {Name: "Experience", Color: "darkAqua"},
	"SkyWarsSoulReward":          {Name: "SkyWars Souls", Color: "aqua"},
	"SkyWarsOpalReward":          {Name: "SkyWars Opals", Color: "aqua"},
	"SkyWarsTokenReward":         {Name: "SkyWars Tokens", Color: "darkGreen"},
	"RewardTokenReward":          {Name: "Reward Tokens", Color: "green"},
	"SpookyBagReward":            {Name: "Spooky Bags", Color: "purple"},
	"AdsenseTokenReward":         {Name: "Creator Tokens", Color: "yellow"},
}

func DisplayForReward(rewardType string) RewardDisplay {
	if display, ok := rewardDisplays[rewardType]; ok {
		return display
	}
	return RewardDisplay{Name: rewardType, Color: "gray"}
}
