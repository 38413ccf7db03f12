package chatbot

import (
	"regexp"
	"strings"
)

// keywordSet holds the trigger variants for one rule, grouped by script.
// Supporting another language means extending these tables, not the rules.
type keywordSet struct {
	latin      []string
	devanagari []string
}

func (k keywordSet) compile(anchored bool) *regexp.Regexp {
	variants := make([]string, 0, len(k.latin)+len(k.devanagari))
	variants = append(variants, k.latin...)
	variants = append(variants, k.devanagari...)

	expr := "(?:" + strings.Join(variants, "|") + ")"
	if anchored {
		expr = "^" + expr
	}
	return regexp.MustCompile("(?i)" + expr)
}

var (
	greetingWords = keywordSet{
		latin:      []string{"hi", "hello", "hey", `good\s*(?:morning|afternoon|evening)`, "namaste"},
		devanagari: []string{"नमस्ते"},
	}
	thanksWords = keywordSet{
		latin:      []string{"thank", "thanks"},
		devanagari: []string{"धन्यवाद"},
	}
	offerWords = keywordSet{
		latin:      []string{"offer", "discount", "deal", "sale", "coupon"},
		devanagari: []string{"छूट", "ऑफर"},
	}
	orderWords = keywordSet{
		latin:      []string{"order", "track", "status"},
		devanagari: []string{"ऑर्डर", "ट्रैक"},
	}
	trackingWords = keywordSet{
		latin:      []string{"track", "status", "where", "last", "recent"},
		devanagari: []string{"स्टेटस"},
	}
	cartWords = keywordSet{
		latin:      []string{"cart", "checkout", "payment", "pay", "cod"},
		devanagari: []string{"कार्ट", "चेकआउट", "भुगतान"},
	}
	shippingWords = keywordSet{
		latin:      []string{"shipping", "delivery", "deliver", "time", "arrive"},
		devanagari: []string{"डिलीवरी", "शिपिंग"},
	}
	returnsWords = keywordSet{
		latin:      []string{"warranty", "return", "refund", "exchange", "replace"},
		devanagari: []string{"वारंटी", "रिटर्न", "रिफंड"},
	}
	paymentMethodWords = keywordSet{
		latin:      []string{"payment method", "upi", "card", "credit", "debit"},
		devanagari: []string{"भुगतान विधि"},
	}
	electronicsWords = keywordSet{
		latin:      []string{"electronic", "laptop", "phone", "headphone", "watch", "camera", "tv"},
		devanagari: []string{"इलेक्ट्रॉनिक"},
	}
	fashionWords = keywordSet{
		latin:      []string{"fashion", "cloth", "dress", "shoe", "sneaker", "jacket", "legging", "chino"},
		devanagari: []string{"फैशन", "कपड़े"},
	}
	homeWords = keywordSet{
		latin:      []string{"home", "living", "vacuum", "chair", "appliance"},
		devanagari: []string{"घर"},
	}
	gamingWords = keywordSet{
		latin:      []string{"gaming", "playstation", "ps5", "xbox"},
		devanagari: []string{"गेमिंग"},
	}
	helpWords = keywordSet{
		latin:      []string{"help", "support", "contact", "assist"},
		devanagari: []string{"मदद", "सपोर्ट"},
	}
)

var (
	greetingPattern      = greetingWords.compile(true)
	thanksPattern        = thanksWords.compile(false)
	offerPattern         = offerWords.compile(false)
	orderPattern         = orderWords.compile(false)
	trackingPattern      = trackingWords.compile(false)
	cartPattern          = cartWords.compile(false)
	shippingPattern      = shippingWords.compile(false)
	returnsPattern       = returnsWords.compile(false)
	paymentMethodPattern = paymentMethodWords.compile(false)
	electronicsPattern   = electronicsWords.compile(false)
	fashionPattern       = fashionWords.compile(false)
	homePattern          = homeWords.compile(false)
	gamingPattern        = gamingWords.compile(false)
	helpPattern          = helpWords.compile(false)
)
