// Package prompt turns a resolved planning request into the text and schema
// sent to the generation service.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/okian/teamforge/internal/domain/model"
)

// DefaultSystemInstruction frames every generation request.
const DefaultSystemInstruction = "You are a world-class Water Polo coach designed to create high-performance practice plans."

// Tier groups recovery severities into protocols.
type Tier string

// Recovery tiers.
const (
	TierNone   Tier = ""
	TierLow    Tier = "low"    // 1-3
	TierMedium Tier = "medium" // 4-6
	TierHigh   Tier = "high"   // 7-10
)

// TierFor maps a 1-10 severity to its tier.
func TierFor(severity int) (Tier, error) {
	switch {
	case severity >= 7 && severity <= 10:
		return TierHigh, nil
	case severity >= 4 && severity <= 6:
		return TierMedium, nil
	case severity >= 1 && severity <= 3:
		return TierLow, nil
	default:
		return TierNone, fmt.Errorf("%w: %d", ErrInvalidSeverity, severity)
	}
}

// Input is everything the builder needs. Focus must already be resolved
// against Roster.
type Input struct {
	Mode              model.Mode
	Roster            []model.Player
	Focus             []model.Player
	Injury            string
	Severity          int
	SystemInstruction string
}

// Profile is the player data embedded in a prompt.
type Profile struct {
	Name         string                                   `json:"name"`
	Position     model.Position                           `json:"position,omitempty"`
	Skills       map[model.SkillCategory]model.SkillLevel `json:"skills"`
	CustomSkills []model.CustomSkill                      `json:"custom_skills"`
}

// Request is a single generation call.
type Request struct {
	Mode              model.Mode
	SystemInstruction string
	Prompt            string
	// Profiles holds exactly the players the prompt describes.
	Profiles   []Profile
	RosterJSON string
	Tier       Tier
	Schema     *Schema
}

// Weakness counts how many of the described players are weak at Skill.
type Weakness struct {
	Skill string
	Count int
}

// Build renders the mode-specific instructions. The schema is the same for
// every mode.
func Build(in Input) (Request, error) {
	if len(in.Roster) == 0 {
		return Request{}, ErrEmptyRoster
	}
	req := Request{
		Mode:              in.Mode,
		SystemInstruction: in.SystemInstruction,
		Schema:            PlanSchema(),
	}
	if strings.TrimSpace(req.SystemInstruction) == "" {
		req.SystemInstruction = DefaultSystemInstruction
	}

	var err error
	switch in.Mode {
	case model.ModeTeam:
		req.Profiles = profiles(in.Roster, true)
		req.RosterJSON, err = encode(req.Profiles)
		req.Prompt = teamPrompt(req.RosterJSON, Weaknesses(in.Roster))

	case model.ModeIndividual:
		if len(in.Focus) == 0 {
			return Request{}, fmt.Errorf("%w: %s", ErrMissingFocus, in.Mode)
		}
		req.Profiles = profiles(in.Focus, true)
		req.RosterJSON, err = encode(req.Profiles)
		req.Prompt = individualPrompt(in.Focus, req.RosterJSON)

	case model.ModeConditioning:
		if len(in.Focus) == 0 {
			return Request{}, fmt.Errorf("%w: %s", ErrMissingFocus, in.Mode)
		}
		req.Profiles = profiles(in.Focus, false)
		req.RosterJSON, err = encode(req.Profiles)
		req.Prompt = conditioningPrompt(in.Focus, req.RosterJSON)

	case model.ModeRecovery:
		if strings.TrimSpace(in.Injury) == "" {
			return Request{}, ErrMissingInjury
		}
		if req.Tier, err = TierFor(in.Severity); err != nil {
			return Request{}, err
		}
		if len(in.Focus) > 0 {
			req.Profiles = profiles(in.Focus[:1], true)
			req.RosterJSON, err = encode(req.Profiles)
		}
		req.Prompt = recoveryPrompt(in.Focus, in.Injury, in.Severity, req.Tier, req.RosterJSON)

	default:
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownMode, in.Mode)
	}
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

func profiles(players []model.Player, withPosition bool) []Profile {
	out := make([]Profile, len(players))
	for i, p := range players {
		out[i] = Profile{
			Name:         p.Name,
			Skills:       p.Skills,
			CustomSkills: p.CustomSkills,
		}
		if withPosition {
			out[i].Position = p.Position
		}
		if out[i].CustomSkills == nil {
			out[i].CustomSkills = []model.CustomSkill{}
		}
	}
	return out
}

func encode(profiles []Profile) (string, error) {
	b, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode profiles: %w", err)
	}
	return string(b), nil
}

// Weaknesses tallies Weakness ratings across players, custom skills
// included, most common first.
func Weaknesses(players []model.Player) []Weakness {
	counts := map[string]int{}
	for _, p := range players {
		for c, lvl := range p.Skills {
			if lvl == model.Weakness {
				counts[string(c)]++
			}
		}
		for _, cs := range p.CustomSkills {
			if cs.Level == model.Weakness {
				counts[cs.Name]++
			}
		}
	}

	out := make([]Weakness, 0, len(counts))
	for s, n := range counts {
		out = append(out, Weakness{Skill: s, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

func teamPrompt(rosterJSON string, weak []Weakness) string {
	var b strings.Builder
	b.WriteString("Create a 2-hour TEAM practice plan for the following roster.\n\n")
	b.WriteString("Roster Data (includes standard skills and personalized custom skills):\n")
	b.WriteString(rosterJSON)
	b.WriteString("\n\n")
	if len(weak) > 0 {
		b.WriteString("Weakness counts across the roster:\n")
		for _, w := range weak {
			fmt.Fprintf(&b, "- %s: %d\n", w.Skill, w.Count)
		}
		b.WriteString("\n")
	}
	b.WriteString("Analyze the collective weaknesses of the team.\n")
	b.WriteString("If many players are weak in a specific area (e.g., Defense), prioritize drills for that.\n")
	b.WriteString("Pay attention to custom skills marked as 'Weakness' for potential specialized improvement drills.\n")
	b.WriteString("Include a mix of warm-up, skill building, and scrimmaging components.\n")
	return b.String()
}

func individualPrompt(focus []model.Player, profilesJSON string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a personalized small-group practice plan (1 hour) for the following players: %s.\n\n",
		strings.Join(model.Names(focus), ", "))
	b.WriteString("Player Profiles:\n")
	b.WriteString(profilesJSON)
	b.WriteString("\n\n")
	b.WriteString("Focus heavily on improving the 'Weakness' areas identified in these profiles.\n")
	b.WriteString("If they share weaknesses, focus on those. If they have complementary strengths, use them in drills ")
	b.WriteString("(e.g., a good passer working with a good shooter).\n\n")
	if len(focus) == 1 {
		b.WriteString("This is a one-on-one session, so every drill must work for a single player with a coach.\n")
	} else {
		fmt.Fprintf(&b, "Since this is a group of %d specific players, ensure the drills allow them to work together.\n", len(focus))
		b.WriteString("For example, if one is a goalie and one is a shooter, include shooting drills. ")
		b.WriteString("If both are drivers, include driving/passing drills.\n")
	}
	return b.String()
}

func conditioningPrompt(focus []model.Player, profilesJSON string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a high-intensity Conditioning Set for the following players: %s.\n\n",
		strings.Join(model.Names(focus), ", "))
	b.WriteString("Detailed Player Profiles:\n")
	b.WriteString(profilesJSON)
	b.WriteString("\n\n")
	b.WriteString("The goal is to physically strengthen these players. Analyze their collective weaknesses.\n")
	b.WriteString("If specific players have specific physical deficits (e.g., weak legs vs weak shoulders), ")
	b.WriteString("include exercises that benefit them.\n\n")
	b.WriteString("The plan MUST be divided into two distinct sections (mix the drills in the list but categorize them clearly):\n")
	b.WriteString("1. **Pool Conditioning**: Swimming sets, leg work (eggbeater), and water resistance drills.\n")
	b.WriteString("2. **Weight Room / Dryland**: Strength training, core work, and mobility exercises suitable for water polo.\n\n")
	b.WriteString("Use the 'category' field to specify 'Pool Conditioning' or 'Weight Room'.\n")
	b.WriteString("For 'duration', use Reps/Sets for weights (e.g., \"3x10\") and Time/Distance for swimming ")
	b.WriteString("(e.g., \"10 mins\" or \"500 yards\").\n")
	return b.String()
}

var tierGuidance = map[Tier]string{ //nolint:gochecknoglobals // fixed protocol text
	TierHigh:   "Severity is High (7-10): focus on absolute rest, icing, protection, and extremely gentle passive range of motion if safe. No load.",
	TierMedium: "Severity is Medium (4-6): focus on active mobility, light isometric loading, and water treading (if safe).",
	TierLow:    "Severity is Low (1-3): focus on progressive strengthening, dynamic stability, and return-to-sport drills.",
}

func recoveryPrompt(focus []model.Player, injury string, severity int, tier Tier, profileJSON string) string {
	athlete := "the athlete"
	if len(focus) > 0 {
		athlete = focus[0].Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a comprehensive Recovery and Rehabilitation Plan for %s.\n\n", athlete)
	fmt.Fprintf(&b, "Injury Details & Location: %s\n", injury)
	fmt.Fprintf(&b, "Current Pain Severity: %d/10\n\n", severity)
	if profileJSON != "" {
		b.WriteString("Athlete Profile:\n")
		b.WriteString(profileJSON)
		b.WriteString("\n\n")
	}
	b.WriteString("The goal is to facilitate healing, maintain mobility, and safely return to sport.\n")
	b.WriteString("Act as a specialized Physical Therapist and Water Polo Coach.\n\n")
	b.WriteString(tierGuidance[tier])
	b.WriteString("\n\n")
	b.WriteString("The plan MUST be divided into logical sections:\n")
	b.WriteString("1. **Mobility/Stretching**: Gentle range of motion exercises.\n")
	b.WriteString("2. **Rehab/Strengthening**: Specific dryland exercises to strengthen the injured area (if safe) or surrounding muscles.\n")
	b.WriteString("3. **Water Work (if applicable)**: Low-impact pool movements or modified swimming that avoids aggravating the injury.\n")
	b.WriteString("4. **Prehab**: Exercises to prevent future recurrence.\n\n")
	b.WriteString("Use 'Rehab', 'Mobility', or 'Pool Recovery' for the category field.\n")
	b.WriteString("Be specific about sets, reps, and precautions.\n")
	return b.String()
}
