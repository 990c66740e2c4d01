package main

// Achievement definitions
type AchievementDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

var Achievements = []AchievementDef{
	{"first_blood", "First Blood", "Kill your first monster"},
	{"exterminator", "Exterminator", "Reach 1000 total kills"},
	{"horde_slayer", "Horde Slayer", "Reach 10000 total kills"},
	{"rampage", "Rampage", "Kill 500 monsters in a single run"},
	{"five_minutes", "Warming Up", "Survive 5 minutes"},
	{"quarter_hour", "Unkillable", "Survive 15 minutes"},
	{"half_hour", "Immortal", "Survive 30 minutes"},
	{"ascended", "Ascended", "Reach level 20 in a single run"},
	{"hoarder", "Hoarder", "Collect 1000 gold total"},
	{"marathoner", "Marathoner", "Play for 5 hours total"},
}

// CheckAchievements checks if any new achievements should be unlocked after
// a finished run. Returns a list of newly unlocked achievements.
func CheckAchievements(db *DB, playerID int64, run RunSummary) []AchievementDef {
	if db == nil {
		return nil
	}

	meta, err := db.GetMeta(playerID)
	if err != nil || meta == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_blood":
			return meta.TotalKills >= 1
		case "exterminator":
			return meta.TotalKills >= 1000
		case "horde_slayer":
			return meta.TotalKills >= 10000
		case "rampage":
			return run.Kills >= 500
		case "five_minutes":
			return run.Duration >= 300
		case "quarter_hour":
			return run.Duration >= 900
		case "half_hour":
			return run.Duration >= 1800
		case "ascended":
			return run.Level >= 20
		case "hoarder":
			return meta.TotalGold >= 1000
		case "marathoner":
			return meta.Playtime >= 5*3600
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}
