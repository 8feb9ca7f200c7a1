package order

import "strings"

const (
	LabelCashOnDelivery = "Cash on Delivery"
	LabelOnline         = "Online Payment"
)

var paymentLabels = map[string]string{
	"cod":    LabelCashOnDelivery,
	"online": LabelOnline,
	"upi":    LabelOnline,
}

// NormalizePayment maps a client payment token to the stored label and the
// initial transaction status. Unknown tokens are stored as cash on delivery.
// The status only stays pending for the exact raw token "cod".
func NormalizePayment(token string) (label, txStatus string) {
	label, ok := paymentLabels[strings.ToLower(token)]
	if !ok {
		label = LabelCashOnDelivery
	}
	txStatus = TxSuccessful
	if token == "cod" {
		txStatus = TxPending
	}
	return label, txStatus
}
