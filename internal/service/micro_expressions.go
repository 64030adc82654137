package service

import "behavior-insights/internal/domain"

type expressionCluster struct {
	label    domain.MicroExpression
	keywords []string
}

// El orden de los clusters define el orden de salida.
var expressionClusters = []expressionCluster{
	{
		label: domain.ExpressionHappiness,
		keywords: []string{
			"happy", "love", "great", "awesome", "amazing", "glad", "excited",
			"haha", "lol", "😊", "😀", "😍", "❤️",
		},
	},
	{
		label: domain.ExpressionAnger,
		keywords: []string{
			"angry", "furious", "hate", "annoyed", "frustrat", "pissed", "😠", "😡",
		},
	},
	{
		label: domain.ExpressionSurprise,
		keywords: []string{
			"wow", "omg", "no way", "unbelievable", "really?", "can't believe", "😮", "😲",
		},
	},
	{
		label: domain.ExpressionFear,
		keywords: []string{
			"afraid", "scared", "worried", "nervous", "anxious", "fear", "😨", "😰",
		},
	},
}

// DetectMicroExpressions marca cada etiqueta una sola vez si algun mensaje contiene alguna de sus palabras.
func DetectMicroExpressions(userMessages []string) []domain.MicroExpression {
	msgs := normalizeAll(userMessages)
	out := []domain.MicroExpression{}
	for _, cluster := range expressionClusters {
		for _, msg := range msgs {
			if containsAny(msg, cluster.keywords) {
				out = append(out, cluster.label)
				break
			}
		}
	}
	return out
}
