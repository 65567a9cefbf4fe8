package entity

// Channel is a delivery channel name. The set is closed: an unrecognized
// name is a configuration defect, not a runtime-discoverable type.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelWebhook Channel = "webhook"
	ChannelSMS     Channel = "sms"
	ChannelPush    Channel = "push"
)

// Valid reports whether the channel name belongs to the closed enumeration.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelWebhook, ChannelSMS, ChannelPush:
		return true
	default:
		return false
	}
}

func (c Channel) String() string {
	return string(c)
}
