package convo

// IntentRequest is the inbound conversation event. Slots keep a pointer value
// so "slot present but unfilled" (key with null) is distinguishable from
// "slot absent".
type IntentRequest struct {
	UserID            string            `json:"userId"`
	CurrentIntent     Intent            `json:"currentIntent"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	InputTranscript   string            `json:"inputTranscript"`
}

type Intent struct {
	Name  string             `json:"name"`
	Slots map[string]*string `json:"slots"`
}

type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

type DialogAction struct {
	Type             string             `json:"type"` // ElicitSlot | Close
	FulfillmentState string             `json:"fulfillmentState,omitempty"`
	IntentName       string             `json:"intentName,omitempty"`
	Slots            map[string]*string `json:"slots,omitempty"`
	SlotToElicit     string             `json:"slotToElicit,omitempty"`
	Message          *Message           `json:"message,omitempty"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// ElicitSlot re-prompts for slotToElicit, carrying session forward so the
// round survives to the next turn.
func ElicitSlot(session map[string]string, intentName string, slots map[string]*string, slotToElicit string, msgs []Fragment) Response {
	if session == nil {
		session = map[string]string{}
	}
	return Response{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:         "ElicitSlot",
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      &Message{ContentType: "PlainText", Content: Render(msgs)},
		},
	}
}

// Close ends the dialog. Session attributes are cleared unless the caller
// passes some explicitly.
func Close(session map[string]string, fulfillmentState string, msgs []Fragment) Response {
	if session == nil {
		session = map[string]string{}
	}
	return Response{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:             "Close",
			FulfillmentState: fulfillmentState,
			Message:          &Message{ContentType: "PlainText", Content: Render(msgs)},
		},
	}
}
