package transcription

// scriptCorpus holds the scripted multi-turn exchanges the synthetic engine
// draws from. Each inner slice is one conversation; each string is one
// speaker turn and becomes one segment.
var scriptCorpus = [][]string{
	{
		"Thank you for calling Acme Support, my name is Sarah. How can I help you today?",
		"Hi Sarah, I'm having trouble with my account login. It keeps saying invalid password.",
		"I'm sorry to hear that. Let me pull up your account. Can I have your account number or email address?",
		"Sure, it's john dot smith at email dot com.",
		"Thank you, I can see your account here. It looks like your account was locked after three failed attempts.",
		"Oh, that makes sense. I was trying different passwords.",
		"No worries, it happens all the time. I've unlocked your account and sent a password reset link to your email.",
		"Great, I just got it. Let me try logging in now.",
		"Take your time.",
		"It worked! Thank you so much for your help, Sarah.",
		"You're welcome! Is there anything else I can help you with today?",
		"No, that's all. Have a great day!",
		"You too! Thank you for calling Acme Support. Goodbye.",
	},
	{
		"Good afternoon, this is Mike with billing support. How may I assist you?",
		"Hi, I received a charge on my statement that I don't recognize. It's for forty-nine ninety-nine.",
		"I'd be happy to look into that for you. May I have your customer ID?",
		"It's C H seven four two one.",
		"Thank you. I can see the charge you're referring to. That's for the premium plan upgrade that was processed on January fifteenth.",
		"I didn't authorize any upgrade. I've been on the basic plan.",
		"I understand your concern. Let me check the activity log on your account.",
		"Please do.",
		"It appears the upgrade was triggered through the mobile app. Is it possible someone with access to your account made this change?",
		"Oh wait, my husband might have done that. Let me check with him.",
		"Of course, take your time.",
		"Yes, he confirmed he upgraded it. I'm sorry for the confusion.",
		"Not a problem at all! Would you like to keep the premium plan or revert to basic?",
		"We'll keep it actually. Thank you for your patience, Mike.",
		"Absolutely! Glad we could sort that out. Have a wonderful day!",
	},
	{
		"Hello, you've reached technical support. This is Jennifer. What seems to be the issue?",
		"My internet has been really slow for the past two days. I'm barely getting five megabits.",
		"I'm sorry about that. Let me run some diagnostics on your line. Can I get your service address?",
		"It's four twenty-one Oak Street, apartment B.",
		"Thank you. I'm seeing some signal issues on your line. There was maintenance in your area yesterday that may have affected your connection.",
		"So is it something on your end?",
		"It appears so. I'm going to reset your connection from here and that should resolve the speed issue.",
		"Okay, how long will that take?",
		"Just about two minutes. Your modem will restart automatically. You'll see the lights flash and then come back solid.",
		"Alright, I see it restarting now.",
		"Perfect. Once all the lights are solid green, try running a speed test.",
		"It's back up and I'm getting ninety-five megabits now. That's much better!",
		"Excellent! That's right where it should be. I'll make a note on your account about this issue.",
		"Thank you so much, Jennifer. You've been very helpful.",
		"Happy to help! If you experience any more issues, don't hesitate to call back. Have a great evening!",
	},
	{
		"Thank you for calling reservations, this is David speaking.",
		"Hi, I'd like to make a reservation for this Saturday.",
		"Of course! How many guests will be dining with us?",
		"There will be four of us.",
		"And what time would you prefer?",
		"Seven thirty if possible.",
		"Let me check availability. We do have a table for four at seven thirty. Would you like indoor or patio seating?",
		"Indoor, please. Do you have anything near the window?",
		"I can put you at a window table. It has a lovely view of the garden.",
		"That sounds perfect. The reservation will be under Thompson.",
		"Wonderful, Mr. Thompson. Table for four, Saturday at seven thirty, window seating. Any dietary restrictions or special occasions I should note?",
		"Actually, it's my wife's birthday. Could you arrange a small cake?",
		"Absolutely! We'd be happy to. We have chocolate, vanilla, or red velvet. Any preference?",
		"Chocolate would be great.",
		"Perfect. I've noted everything. We'll have a complimentary birthday dessert ready. See you Saturday, Mr. Thompson!",
		"Thank you, David. We're looking forward to it!",
	},
	{
		"Claims department, this is Rachel. How can I help?",
		"I need to file a claim. I had a fender bender this morning.",
		"I'm sorry to hear that. Are you okay? Was anyone injured?",
		"Everyone is fine, thankfully. Just some damage to the bumper.",
		"Good to hear everyone's safe. I'll help you get this claim started. Can I have your policy number?",
		"It's P O L dash eight eight three two one seven.",
		"Thank you. I have your policy pulled up. Can you walk me through what happened?",
		"I was stopped at a red light on Main Street and the car behind me didn't stop in time.",
		"Understood. Did you get the other driver's information?",
		"Yes, I have their insurance details and we both took photos.",
		"Perfect, that's exactly what we need. I'm going to assign you a claim number. It's C L M dash two zero two five dash zero four seven.",
		"Got it, thank you.",
		"An adjuster will contact you within twenty-four hours to schedule an inspection. In the meantime, you're welcome to get a repair estimate from any of our approved shops.",
		"Is Smith Auto Body on the approved list?",
		"Let me check. Yes, they are! They're one of our preferred partners actually.",
		"Great, I'll take it there. Thanks for your help, Rachel.",
		"You're welcome. I'm sorry about the accident, but we'll get you taken care of. Stay safe!",
	},
}
