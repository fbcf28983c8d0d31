package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shmeado/lantern/internal/adapters/cache"
	"github.com/shmeado/lantern/internal/adapters/playerprovider"
	"github.com/shmeado/lantern/internal/adapters/resourceprovider"
	"github.com/shmeado/lantern/internal/adapters/statusprovider"
	"github.com/shmeado/lantern/internal/adapters/uuidprovider"
	"github.com/shmeado/lantern/internal/app"
	"github.com/shmeado/lantern/internal/domain"
	"github.com/shmeado/lantern/internal/ratelimiting"
	"github.com/shmeado/lantern/internal/strutils"
)

func main() {
	hypixelApiKey := os.Getenv("HYPIXEL_API_KEY")

	if hypixelApiKey == "" {
		log.Fatal("No Hypixel API key provided")
	}

	if len(os.Args) < 2 || os.Args[1] == "" {
		log.Fatal("No player name provided")
	}

	player := os.Args[1]

	ctx := context.Background()
	httpClient := &http.Client{Timeout: 10 * time.Second}
	keyBudget := ratelimiting.NewKeyBudgetLimiter(120, 5*time.Minute, time.Now, time.After)

	uuid, err := strutils.NormalizeUUID(player)
	if err != nil {
		// Player name -> ask mojang for uuid
		getUUID := app.BuildGetUUIDWithCache(
			cache.NewTTLCache[string](time.Hour),
			uuidprovider.NewMojangUUIDProvider(httpClient),
		)
		uuid, err = getUUID(ctx, player)
		if err != nil {
			log.Fatalf("Failed resolving username: %v", err)
		}
	}

	resources, err := resourceprovider.NewHypixelResources(httpClient)
	if err != nil {
		log.Fatalf("Failed initializing resource provider: %v", err)
	}

	games, err := resources.GetGames(ctx)
	if err != nil {
		log.Fatalf("Failed fetching games resource: %v", err)
	}
	questIndex, err := resources.GetQuests(ctx)
	if err != nil {
		log.Fatalf("Failed fetching quests resource: %v", err)
	}
	challengeIndex, err := resources.GetChallenges(ctx)
	if err != nil {
		log.Fatalf("Failed fetching challenges resource: %v", err)
	}
	achievementIndex, err := resources.GetAchievements(ctx)
	if err != nil {
		log.Fatalf("Failed fetching achievements resource: %v", err)
	}

	hypixelAPI := playerprovider.NewHypixelAPI(httpClient, keyBudget, hypixelApiKey)
	progressProvider, err := playerprovider.NewHypixelProgressProvider(hypixelAPI)
	if err != nil {
		log.Fatalf("Failed initializing progress provider: %v", err)
	}

	progress, err := progressProvider.GetPlayerProgress(ctx, uuid)
	if err != nil {
		log.Fatalf("Failed fetching player progress: %v", err)
	}

	fmt.Printf("Dashboard for %s\n", uuid)

	achievements := app.AggregateAchievements(achievementIndex, games, progress, domain.RulesetCurrent)
	fmt.Printf("\nAchievements: %d/%d unlocked, %d/%d points (%s)\n",
		achievements.TotalUnlocked, achievements.TotalPossible,
		achievements.TotalPoints, achievements.TotalPossiblePoints,
		achievements.GlobalPercentage,
	)
	for _, mode := range achievements.Modes {
		fmt.Printf("  %-24s %4d/%-4d %s\n", mode.Title, mode.Unlocked, mode.Possible, mode.PercentageLabel)
	}

	quests := app.AggregateQuests(questIndex, games, progress)
	fmt.Printf("\nQuests: %d completions, main mode %s\n", quests.TotalCompletions, quests.MainMode)

	challenges := app.AggregateChallenges(challengeIndex, games, progress)
	fmt.Printf("Challenges: %d completions, main mode %s\n", challenges.TotalCompletions, challenges.MainMode)

	statusProvider, err := statusprovider.NewHypixelStatus(httpClient, keyBudget, hypixelApiKey)
	if err != nil {
		log.Fatalf("Failed initializing status provider: %v", err)
	}

	session, err := statusProvider.GetStatus(ctx, uuid)
	if err != nil {
		log.Printf("Failed fetching online status: %v", err)
	} else {
		online := app.OnlineViewFor(session, games)
		if online.Online {
			fmt.Printf("\nOnline: %s %s\n", online.Game, online.Mode)
		} else {
			fmt.Println("\nOffline")
		}
	}

	guild, err := statusProvider.GetGuild(ctx, uuid)
	if errors.Is(err, domain.ErrNotInGuild) {
		fmt.Println("Not in a guild")
	} else if err != nil {
		log.Printf("Failed fetching guild: %v", err)
	} else {
		view := app.AggregateGuild(guild, games, time.Now())
		fmt.Printf("Guild: %s %s level %s, %d members\n", view.Name, view.Tag, view.Level, view.Members)
	}
}
