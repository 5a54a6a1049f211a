package analysis

import (
	"fmt"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/scoring"
)

// mbtiNarratives is the offline narrative table, keyed by the 4-letter type.
var mbtiNarratives = map[string]Analysis{
	"INTJ": {
		Title:   "The Architect",
		Summary: "An imaginative and strategic thinker with a plan for everything. You pursue mastery and have an endless appetite for knowledge.",
		KeyTraits: []string{
			"Rational and clear-headed",
			"Strong-willed and independent",
			"Deeply curious",
			"Sees the whole system, not just the parts",
		},
		Recommendations: []string{
			"Share your reasoning before presenting conclusions",
			"Make room for other people's feelings in decisions",
			"Let some plans stay imperfect",
			"Seek work with room for long-range strategy",
		},
		DetailedAnalysis: "You approach life as a system to be understood and improved. That gives you rare strategic depth, but it can read as aloofness: others may experience your certainty as dismissal. Your growth edge is patience with processes, and people, that do not optimize cleanly. When you pair your vision with deliberate warmth, you become the person others trust with the hardest problems.",
	},
	"INTP": {
		Title:   "The Logician",
		Summary: "An inventive mind with an unquenchable thirst for knowledge. You see problems from angles nobody else considers.",
		KeyTraits: []string{
			"Powerful analytical ability",
			"Original, unconventional thinking",
			"Open-minded and objective",
			"Honest about evidence, even against yourself",
		},
		Recommendations: []string{
			"Ship ideas before they feel finished",
			"Schedule time with people, not just problems",
			"Practice stating feelings plainly",
			"Pick one project and see it through",
		},
		DetailedAnalysis: "Your inner world is a workshop of half-built theories, and that is where you are happiest. The risk is that analysis becomes a substitute for action and connection. You do not need to become social or decisive by temperament; you need small, repeatable habits that move ideas into the world. The people who stick around will value your honesty more than your polish.",
	},
	"ENTJ": {
		Title:   "The Commander",
		Summary: "A bold, strong-willed leader who always finds a way, or makes one. You turn ambition into organized momentum.",
		KeyTraits: []string{
			"Efficient and decisive",
			"Energetic and driven",
			"Self-confident",
			"Strong-willed under pressure",
		},
		Recommendations: []string{
			"Ask questions before issuing directions",
			"Treat emotions as data, not noise",
			"Delegate outcomes, not just tasks",
			"Protect time to rest before you need it",
		},
		DetailedAnalysis: "You naturally take charge, and groups often quietly reorganize around your momentum. The cost of that gift is a blind spot for slower, quieter contributions and for your own limits. Learning to lead people who do not think like you is your highest-leverage skill. Handled well, your drive builds institutions rather than just winning arguments.",
	},
	"ENTP": {
		Title:   "The Debater",
		Summary: "A quick, curious thinker who cannot resist an intellectual challenge. You break rules to find better ones.",
		KeyTraits: []string{
			"Knowledgeable across domains",
			"Fast, flexible thinking",
			"Excellent brainstormer",
			"Energized by challenge",
		},
		Recommendations: []string{
			"Finish one argument before starting three more",
			"Notice when debate stops being fun for the other side",
			"Pair with people who execute",
			"Write ideas down before they evaporate",
		},
		DetailedAnalysis: "Your mind treats every assumption as an invitation. That makes you an extraordinary source of new options, and occasionally an exhausting teammate. The skill that multiplies your talent is editorial: choosing which provocations matter and letting the rest go. When you aim your curiosity at one worthy problem, you are close to unstoppable.",
	},
	"INFJ": {
		Title:   "The Advocate",
		Summary: "A quiet, principled idealist with surprising resolve. You are driven to help others realize their potential.",
		KeyTraits: []string{
			"Creative and insightful",
			"Principled and committed",
			"Deeply empathetic",
			"Quietly determined",
		},
		Recommendations: []string{
			"Say what you need before resentment builds",
			"Accept good-enough in low-stakes areas",
			"Guard time alone without apology",
			"Choose causes, not every cause",
		},
		DetailedAnalysis: "You read people accurately and care intensely, a combination that makes you invaluable and vulnerable in equal measure. Perfectionism and private over-giving are your characteristic drains. Your work is sustainable only when your ideals include yourself as someone worth protecting. At your best you change people's lives in ways they remember decades later.",
	},
	"INFP": {
		Title:   "The Mediator",
		Summary: "A poetic, kind altruist, always eager to help a good cause. You measure life by meaning, not metrics.",
		KeyTraits: []string{
			"Strong empathy",
			"Generous and loyal",
			"Open-minded",
			"Deeply creative",
		},
		Recommendations: []string{
			"Turn one ideal into a concrete weekly habit",
			"Let people earn trust gradually",
			"Practice handling criticism as information",
			"Keep a sustainable pace for your giving",
		},
		DetailedAnalysis: "You carry a vivid inner standard of how things ought to be, and the gap between that and reality can ache. That same gap is your creative engine when you give it an outlet. Beware of idealizing people and then grieving the real ones. Grounded routines and honest friendships turn your idealism from a burden into a compass.",
	},
	"ENFJ": {
		Title:   "The Protagonist",
		Summary: "A charismatic, inspiring leader who genuinely cares. People find themselves doing their best work around you.",
		KeyTraits: []string{
			"Tolerant and receptive",
			"Reliable under responsibility",
			"Natural charisma",
			"Altruistic instincts",
		},
		Recommendations: []string{
			"Name your own needs out loud",
			"Let others solve their own problems sometimes",
			"Make unpopular decisions when they are right",
			"Check whether harmony is hiding a real issue",
		},
		DetailedAnalysis: "You instinctively organize groups around shared purpose, and people trust you quickly. Your risk is self-erasure: sacrificing your own needs for harmony until the deficit shows up as burnout or quiet resentment. Leadership that includes honest self-care is not selfish; it is what makes your care durable. Your influence is largest when you also let people see your limits.",
	},
	"ENFP": {
		Title:   "The Campaigner",
		Summary: "An enthusiastic, creative free spirit who can always find a reason to smile. You make connection look effortless.",
		KeyTraits: []string{
			"Curious about everything",
			"Perceptive about people",
			"Passionate and energetic",
			"Excellent communicator",
		},
		Recommendations: []string{
			"Protect focus blocks from your own enthusiasm",
			"Follow through on the unglamorous middle of projects",
			"Ground big feelings before big decisions",
			"Keep a few deep friendships, not only many light ones",
		},
		DetailedAnalysis: "Your enthusiasm is genuinely contagious, and you see possibilities in people that they miss in themselves. The shadow side is scattered attention and emotional weather that can swing with your environment. Structure is not the enemy of your spontaneity; it is what lets your best ideas survive to completion. Depth, chosen deliberately, is your next level.",
	},
	"ISTJ": {
		Title:   "The Logistician",
		Summary: "Practical, fact-minded, and reliable beyond question. You are the quiet foundation that institutions are built on.",
		KeyTraits: []string{
			"Honest and direct",
			"Strong-willed and dutiful",
			"Very responsible",
			"Calm and practical",
		},
		Recommendations: []string{
			"Treat some rules as guidelines",
			"Say appreciation out loud, not just in actions",
			"Experiment with small, low-risk changes",
			"Go easier on yourself after mistakes",
		},
		DetailedAnalysis: "You keep promises that others forget they made, and your word is a form of infrastructure. The risk is rigidity: mistaking the familiar procedure for the right one, and judging yourself harshly when reality refuses to follow the manual. Flexibility, practiced in small doses, widens your considerable strengths. People rely on you more than they say.",
	},
	"ISFJ": {
		Title:   "The Defender",
		Summary: "A dedicated, warm protector, always ready to defend the people you love. You notice what everyone else overlooks.",
		KeyTraits: []string{
			"Supportive and loyal",
			"Patient and reliable",
			"Observant of details",
			"Hardworking without fanfare",
		},
		Recommendations: []string{
			"Ask for help before you are overwhelmed",
			"Let your contributions be visible",
			"Express hurt directly instead of absorbing it",
			"Try one change you did not initiate",
		},
		DetailedAnalysis: "You care through concrete acts: remembering, preparing, quietly fixing. Because you rarely advertise, your effort is easy to take for granted, and you tend to let it be. Suppressed feelings do not disappear; they accumulate. Learning to state needs plainly is the single change that most improves your relationships. Your steadiness is a rarer gift than you believe.",
	},
	"ESTJ": {
		Title:   "The Executive",
		Summary: "An excellent administrator, unmatched at managing things and people. You stand for order, and order works.",
		KeyTraits: []string{
			"Dedicated and dependable",
			"Strong-willed",
			"Direct and honest",
			"Builds order from chaos",
		},
		Recommendations: []string{
			"Hear the unconventional idea out fully",
			"Judge people by trajectory, not just position",
			"Schedule genuine rest",
			"Let feelings into the decision record",
		},
		DetailedAnalysis: "You make groups function: schedules hold, standards stay up, and things ship because you insist they do. The cost can be inflexibility and impatience with people who work differently. Your authority deepens when you show you can change your mind in public. The best executives are not the ones who were never wrong, but the ones who correct fastest.",
	},
	"ESFJ": {
		Title:   "The Consul",
		Summary: "Extraordinarily caring, social, and popular, always eager to help. You make communities feel like communities.",
		KeyTraits: []string{
			"Strong practical skills",
			"Strong sense of duty",
			"Very loyal",
			"Warm and sensitive to others",
		},
		Recommendations: []string{
			"Let some criticism pass without fixing yourself around it",
			"Do one thing purely for you each week",
			"Welcome an unconventional idea now and then",
			"Check that helping was asked for",
		},
		DetailedAnalysis: "You hold social fabric together: the birthdays remembered, the newcomers welcomed, the conflicts soothed. Because you calibrate to others' approval, criticism can land harder on you than it should. Your warmth does not need external validation to be real. Anchoring your worth internally frees you to care generously without keeping score.",
	},
	"ISTP": {
		Title:   "The Virtuoso",
		Summary: "A bold, practical experimenter, master of tools of every kind. You would rather try it than talk about it.",
		KeyTraits: []string{
			"Optimistic and energetic",
			"Creative and practical",
			"Relaxed, rational judgment",
			"Great in a crisis",
		},
		Recommendations: []string{
			"Tell people before you disappear into a project",
			"Practice staying with boring-but-important tasks",
			"Say the quiet appreciation out loud",
			"Pick commitments rarely, then keep them",
		},
		DetailedAnalysis: "You learn with your hands and stay calm when things break, which makes you the person everyone wants nearby in an emergency. Commitment and expressed emotion can feel like traps to you, so people may underestimate how much you care. Your actions already speak; a few words alongside them go a surprisingly long way. Freedom plus a craft you respect is your formula.",
	},
	"ISFP": {
		Title:   "The Adventurer",
		Summary: "A flexible, charming artist, always ready to explore and experience something new. You live by your senses and your values.",
		KeyTraits: []string{
			"Charming and easygoing",
			"Sensitive to others",
			"Imaginative and artistic",
			"Curious and open",
		},
		Recommendations: []string{
			"Plan just enough future to protect your freedom",
			"Share your work before it feels safe",
			"Name your values so others can honor them",
			"Treat criticism of the work as not of you",
		},
		DetailedAnalysis: "You experience the world vividly and express yourself through what you make and do rather than what you declare. Because your values run deep but quiet, people may not realize when they have crossed one until you are already gone. Giving others a map to what matters to you protects your relationships. Your unforced authenticity is the thing people remember.",
	},
	"ESTP": {
		Title:   "The Entrepreneur",
		Summary: "Smart, energetic, and perceptive, you genuinely enjoy living on the edge. Where the action is, there you are.",
		KeyTraits: []string{
			"Bold and direct",
			"Rational and practical",
			"Original under pressure",
			"Sharp perception of people",
		},
		Recommendations: []string{
			"Run the ten-year check on big risks",
			"Let structure handle what memory drops",
			"Slow down for the sensitive conversations",
			"Finish before switching to the next thrill",
		},
		DetailedAnalysis: "You think fastest in motion and read rooms in real time, which makes you formidable wherever outcomes depend on nerve. The characteristic tax is impulsivity: bets taken for the jolt rather than the payoff, and details dropped in the wake. A little deliberate structure does not slow you down; it keeps your wins compounding. People follow your energy more than you notice.",
	},
	"ESFP": {
		Title:   "The Entertainer",
		Summary: "Spontaneous, energetic, and enthusiastic, life is never boring around you. You turn ordinary moments into occasions.",
		KeyTraits: []string{
			"Bold and original",
			"Excellent people skills",
			"Strong practical aesthetics",
			"Observant of what others feel",
		},
		Recommendations: []string{
			"Put the boring money and planning tasks on autopilot",
			"Sit with conflict instead of outshining it",
			"Build one skill past the fun stage",
			"Keep friends who tell you hard truths",
		},
		DetailedAnalysis: "You give the people around you permission to enjoy themselves, and that is a real social gift, not a trivial one. The pattern to watch is avoidance: using fun and motion to sidestep conflict and long-term planning until they grow teeth. Facing the dull and difficult early keeps your spotlight sustainable. Joy, organized even slightly, becomes a career and a life.",
	},
}

// unknownNarrative is returned for types outside the table.
func unknownNarrative(key string) Analysis {
	return Analysis{
		Title:            "Unknown Type",
		Summary:          fmt.Sprintf("No reference narrative is available for %q.", key),
		KeyTraits:        []string{"N/A"},
		Recommendations:  []string{"Retake the assessment to regenerate this result"},
		DetailedAnalysis: "This result does not match any known profile in the offline reference table, so no detailed narrative can be shown.",
	}
}

// Fallback returns the static narrative for a result. MBTI results are
// looked up by their 4-letter type; other assessment kinds get a
// generic record built from their computed summary.
func Fallback(res *scoring.Result) Analysis {
	switch res.Kind {
	case assessment.TypeMBTI:
		if a, ok := mbtiNarratives[res.MBTI.Type]; ok {
			return a
		}
		return unknownNarrative(res.MBTI.Type)
	case assessment.TypeHolland:
		return Analysis{
			Title:            fmt.Sprintf("Career Code %s", res.Holland.Code),
			Summary:          fmt.Sprintf("Your strongest interest areas form the code %s.", res.Holland.Code),
			KeyTraits:        []string{"Interest profile derived from your agreement pattern"},
			Recommendations:  []string{"Explore occupations matching your top three interest areas"},
			DetailedAnalysis: "The Holland code orders six broad interest areas by how strongly you endorsed them. Careers aligned with your top areas tend to feel more sustainable and engaging over time.",
		}
	case assessment.TypeSCL90:
		return Analysis{
			Title:            fmt.Sprintf("Screening Level: %s", res.SCL90.Severity),
			Summary:          "A brief self-report snapshot of recent psychological distress.",
			KeyTraits:        []string{"Self-reported symptom levels over the recent period"},
			Recommendations:  []string{"If distress persists or worsens, talk to a qualified professional"},
			DetailedAnalysis: "This screening is not a diagnosis. It reflects how you rated your own recent experience; scores change with sleep, stress, and circumstances.",
		}
	case assessment.TypeIQ:
		return scaleNarrative("Reasoning", res.IQ)
	case assessment.TypeEQ:
		return scaleNarrative("Emotional Skills", res.EQ)
	case assessment.TypeSpiritual:
		return Analysis{
			Title:            fmt.Sprintf("Dominant Need: %s", res.Spiritual.Dominant),
			Summary:          fmt.Sprintf("Your responses point to %s as your strongest current need.", res.Spiritual.Dominant),
			KeyTraits:        []string{"Needs ranked by your own ratings"},
			Recommendations:  []string{"Give deliberate weekly time to your dominant need"},
			DetailedAnalysis: "Spiritual needs shift with seasons of life. Treat the dominant need as a signal about where attention would be most restorative right now, not a fixed label.",
		}
	default:
		return unknownNarrative(string(res.Kind))
	}
}

func scaleNarrative(label string, r *scoring.ScaleResult) Analysis {
	return Analysis{
		Title:            fmt.Sprintf("%s: %s", label, r.Level),
		Summary:          fmt.Sprintf("You scored %.0f of %.0f on this short scale.", r.Score, r.Total),
		KeyTraits:        []string{fmt.Sprintf("Level: %s", r.Level)},
		Recommendations:  []string{"Treat short self-tests as a snapshot, not a verdict"},
		DetailedAnalysis: "Brief self-administered scales are rough instruments. They are useful for reflection and tracking change over time, but a single sitting says little on its own.",
	}
}
