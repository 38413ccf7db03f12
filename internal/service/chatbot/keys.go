package chatbot

// Message, title and label keys attached to responses. The widget resolves
// them against its locale bundles.
const (
	KeyWelcome            = "chat.welcome"
	KeyGreeting           = "chat.greeting"
	KeyThanks             = "chat.thanks"
	KeyTopDeals           = "chat.topDeals"
	KeyLoginForOrders     = "chat.loginForOrders"
	KeyLoginButton        = "chat.loginButton"
	KeyNoOrders           = "chat.noOrders"
	KeyEmptyCart          = "chat.emptyCart"
	KeyCartHelp           = "chat.cartHelp"
	KeyShippingFAQ        = "chat.faq.shipping"
	KeyReturnsFAQ         = "chat.faq.returns"
	KeyPaymentFAQ         = "chat.faq.payment"
	KeyElectronicsTitle   = "chat.electronicsTitle"
	KeyFashionTitle       = "chat.fashionTitle"
	KeyHomeTitle          = "chat.homeTitle"
	KeyGamingTitle        = "chat.gamingTitle"
	KeyProductsUnderPrice = "chat.productsUnderPrice"
	KeyNoProductsInRange  = "chat.noProductsInRange"
	KeyHelpMessage        = "chat.helpMessage"
	KeyFallback           = "chat.fallback"

	KeyCheckout    = "cart.checkout"
	KeyNavCart     = "nav.cart"
	KeyNavOrders   = "nav.orders"
	KeyNavProducts = "nav.products"
	KeyHelpCenter  = "footer.helpCenter"
	KeyContactUs   = "footer.contactUs"
)
