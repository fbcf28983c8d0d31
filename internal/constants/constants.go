package constants

const USER_AGENT = "lantern/1.0 (+https://github.com/shmeado/lantern)"
