// Package content holds the static wellness texts served to authenticated
// users. The texts are fixed; they are not generated and carry no user data.
package content

// MeditationText is the guided breathing script served by the meditation
// endpoint.
const MeditationText = `Find a comfortable position, sitting or lying down, and let your eyes close gently.

Take a slow breath in through your nose for a count of four... hold it softly for four... and release it through your mouth for a count of six. Feel your shoulders drop as the air leaves your body.

Again: in for four... hold for four... out for six. With each exhale, imagine tension flowing out of you like water.

Now let your breath settle into its own rhythm. Notice the points where your body touches the surface beneath you. You are supported. You are safe in this moment.

If a thought arrives, that's okay. Notice it, name it "thinking", and let it drift past like a cloud. Return to your breath.

Stay here for as long as you like. When you're ready, wiggle your fingers and toes, and open your eyes. Carry this calm with you.`

// WellnessPlanText is the daily wellness plan served by the wellness-plan
// endpoint.
const WellnessPlanText = `Your daily wellness plan:

Morning
- Drink a glass of water before anything else.
- Step outside or open a window for two minutes of fresh air.
- Write down one thing you're looking forward to today.

Midday
- Take a ten-minute walk, away from screens if you can.
- Eat lunch without multitasking.
- Check in with yourself: name the feeling you're carrying right now.

Evening
- Put devices away thirty minutes before bed.
- Note one small thing that went well today, however minor.
- Aim for a consistent bedtime. Rest is a skill; practice it kindly.

Remember: small, repeatable steps beat grand plans. Be patient with yourself.`
