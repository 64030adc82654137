package domain

import "time"

// MessageRecord es un mensaje de la conversacion tal como lo entrega el llamador.
type MessageRecord struct {
	Content   string     `json:"content"`
	IsUser    bool       `json:"isUser"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type ClickPattern struct {
	Element     string  `json:"element"`
	TimeViewing float64 `json:"timeViewing"`
}

type PageView struct {
	Page      string  `json:"page"`
	TimeSpent float64 `json:"timeSpent"` // segundos
}

// InteractionHistory agrupa clicks, paginas vistas y demoras de respuesta.
// Las listas vacias son validas.
type InteractionHistory struct {
	ClickPatterns  []ClickPattern `json:"clickPatterns"`
	PageViews      []PageView     `json:"pageViews"`
	ResponseDelays []float64      `json:"responseDelays"`
}

// RawSignals es la entrada del analizador conductual directo.
type RawSignals struct {
	MessageHistory     []MessageRecord    `json:"messageHistory"`
	InteractionHistory InteractionHistory `json:"interactionHistory"`
	ContentPreferences []string           `json:"contentPreferences"`
}

// UserMessages devuelve solo el contenido de los mensajes escritos por el usuario.
func (s RawSignals) UserMessages() []string {
	var out []string
	for _, m := range s.MessageHistory {
		if m.IsUser {
			out = append(out, m.Content)
		}
	}
	return out
}
