package domain

type SensoryPreference string

const (
	SensoryVisual      SensoryPreference = "visual"
	SensoryAuditory    SensoryPreference = "auditory"
	SensoryKinesthetic SensoryPreference = "kinesthetic"
)

// SensoryPreferences respeta el orden de desempate visual > auditivo > kinestesico.
var SensoryPreferences = []SensoryPreference{SensoryVisual, SensoryAuditory, SensoryKinesthetic}

func (s SensoryPreference) Valid() bool {
	switch s {
	case SensoryVisual, SensoryAuditory, SensoryKinesthetic:
		return true
	default:
		return false
	}
}

// InfluencePhase modela la progresion interest -> trust -> desire -> action -> loyalty.
type InfluencePhase string

const (
	PhaseInterest InfluencePhase = "interest"
	PhaseTrust    InfluencePhase = "trust"
	PhaseDesire   InfluencePhase = "desire"
	PhaseAction   InfluencePhase = "action"
	PhaseLoyalty  InfluencePhase = "loyalty"
)

func (p InfluencePhase) Valid() bool {
	switch p {
	case PhaseInterest, PhaseTrust, PhaseDesire, PhaseAction, PhaseLoyalty:
		return true
	default:
		return false
	}
}

// MicroExpression es una etiqueta afectiva gruesa inferida del texto.
type MicroExpression string

const (
	ExpressionHappiness MicroExpression = "happiness"
	ExpressionAnger     MicroExpression = "anger"
	ExpressionSurprise  MicroExpression = "surprise"
	ExpressionFear      MicroExpression = "fear"
	ExpressionDisgust   MicroExpression = "disgust"
	ExpressionNeutral   MicroExpression = "neutral"
)

func (e MicroExpression) Valid() bool {
	switch e {
	case ExpressionHappiness, ExpressionAnger, ExpressionSurprise, ExpressionFear, ExpressionDisgust, ExpressionNeutral:
		return true
	default:
		return false
	}
}

type Technique string

const (
	TechniqueYesLadder                  Technique = "yes_ladder"
	TechniqueSocialProof                Technique = "social_proof"
	TechniqueScarcityFraming            Technique = "scarcity_framing"
	TechniqueInterrogationEncapsulation Technique = "interrogation_encapsulation"
	TechniqueBTEMapping                 Technique = "bte_mapping"
	TechniqueReciprocityTrigger         Technique = "reciprocity_trigger"
	TechniqueCommitmentConsistency      Technique = "commitment_consistency"
	TechniqueLikeabilityEnhancement     Technique = "likeability_enhancement"
)

func (t Technique) Valid() bool {
	switch t {
	case TechniqueYesLadder, TechniqueSocialProof, TechniqueScarcityFraming,
		TechniqueInterrogationEncapsulation, TechniqueBTEMapping, TechniqueReciprocityTrigger,
		TechniqueCommitmentConsistency, TechniqueLikeabilityEnhancement:
		return true
	default:
		return false
	}
}

// SuggestedApproach es la tecnica elegida con su plantilla de lenguaje.
// Las listas de cues se omiten cuando la regla no las define.
type SuggestedApproach struct {
	Technique       Technique `json:"technique"`
	LanguagePattern string    `json:"languagePattern"`
	VisualCues      []string  `json:"visualCues,omitempty"`
	AudioElements   []string  `json:"audioElements,omitempty"`
}

// ChaseHughesProfile es el perfil conductual resultante.
// Todos los puntajes y el progreso quedan en [0,100].
type ChaseHughesProfile struct {
	PrimarySensoryPreference   SensoryPreference  `json:"primarySensoryPreference"`
	SecondarySensoryPreference *SensoryPreference `json:"secondarySensoryPreference,omitempty"`
	CurrentInfluencePhase      InfluencePhase     `json:"currentInfluencePhase"`
	InfluencePhaseProgress     int                `json:"influencePhaseProgress"`
	DetectedMicroExpressions   []MicroExpression  `json:"detectedMicroExpressions"`
	ResponsiveToTechniques     []Technique        `json:"responsiveToTechniques"`
	SuggestedApproach          SuggestedApproach  `json:"suggestedApproach"`
	TrustScore                 int                `json:"trustScore"`
	DesireScore                int                `json:"desireScore"`
	EngagementScore            int                `json:"engagementScore"`
}

// HasTechnique indica si el perfil responde a la tecnica dada.
func (p ChaseHughesProfile) HasTechnique(t Technique) bool {
	for _, x := range p.ResponsiveToTechniques {
		if x == t {
			return true
		}
	}
	return false
}

// HasExpression indica si se detecto la microexpresion dada.
func (p ChaseHughesProfile) HasExpression(e MicroExpression) bool {
	for _, x := range p.DetectedMicroExpressions {
		if x == e {
			return true
		}
	}
	return false
}
